package api

import "metapool/domain/meta"

// BatchRequest bundles several independent analyses into one call
type BatchRequest struct {
	Analyses []meta.Request `json:"analyses"`
}

// BatchResponse returns one result per analysis, in request order
type BatchResponse struct {
	Results []meta.Result `json:"results"`
}

// ErrorResponse is the JSON body for transport-level failures (malformed
// requests). Domain-level failures ride inside meta.Result instead.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}
