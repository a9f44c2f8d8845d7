package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"metapool/domain/meta"
	"metapool/internal/errors"
)

// handleHealth reports liveness
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// handleMetaAnalysis runs a single meta-analysis. An empty study list is a
// domain-level condition and comes back as 200 with a result-level error,
// matching the engine contract; only malformed JSON is a transport failure.
func (a *App) handleMetaAnalysis(w http.ResponseWriter, r *http.Request) {
	var req meta.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("request body is not valid JSON"))
		return
	}

	a.applyDefaults(&req)

	analysisID := uuid.NewString()
	a.logger.Info("[API] analysis %s: n=%d measure=%s model=%s", analysisID, len(req.Studies), req.Measure, req.Model)

	result := a.engine.Run(req)
	if result.Error != "" {
		a.logger.Warn("[API] analysis %s rejected: %s", analysisID, result.Error)
	}

	a.writeJSON(w, http.StatusOK, result)
}

// handleMetaAnalysisBatch fans independent analyses out concurrently.
// The engine has no shared mutable state, so each goroutine writes only its
// own slot and results keep request order.
func (a *App) handleMetaAnalysisBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, errors.InvalidInput("request body is not valid JSON"))
		return
	}

	batchID := uuid.NewString()
	a.logger.Info("[API] batch %s: %d analyses", batchID, len(req.Analyses))

	results := make([]meta.Result, len(req.Analyses))
	var g errgroup.Group
	for i, analysis := range req.Analyses {
		i, analysis := i, analysis
		g.Go(func() error {
			a.applyDefaults(&analysis)
			results[i] = a.engine.Run(analysis)
			return nil
		})
	}
	// Engine runs cannot fail; Wait only synchronizes the fan-out.
	_ = g.Wait()

	a.writeJSON(w, http.StatusOK, BatchResponse{Results: results})
}

// applyDefaults fills measure/model from configuration when the caller
// omitted them. The engine has its own OR/fixed fallbacks; these let a
// deployment pick different defaults.
func (a *App) applyDefaults(req *meta.Request) {
	if req.Measure == "" {
		req.Measure = a.cfg.Analysis.DefaultMeasure
	}
	if req.Model == "" {
		req.Model = a.cfg.Analysis.DefaultModel
	}
}

func (a *App) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error("[API] response encoding failed: %v", err)
	}
}

func (a *App) writeError(w http.ResponseWriter, status int, err error) {
	a.writeJSON(w, status, ErrorResponse{
		Error: err.Error(),
		Code:  errors.GetCode(err),
	})
}
