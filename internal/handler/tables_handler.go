package handlers

import (
	"net/http"
)

type StatsResponse struct {
	Rows map[string]int64 `json:"rows"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := h.StatsService.RowCounts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, StatsResponse{Rows: counts}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if h.DB == nil {
		writeSuccess(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	if err := h.DB.HealthCheck(r.Context()); err != nil {
		h.Log.WithError(err).Warn("health check failed")
		writeSuccess(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
