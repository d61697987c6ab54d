package handler

import (
	"net/http"

	"github.com/osse101/OwoSlots_Go/internal/stats"
)

// StatsHandler serves session statistics
type StatsHandler struct {
	stats stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{stats: svc}
}

// HandleGetStats returns totals for every spin played this session
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.stats.GetSlotsStats(r.Context()))
}

// HandleResetStats clears the totals without touching balance or history
func (h *StatsHandler) HandleResetStats(w http.ResponseWriter, r *http.Request) {
	h.stats.Reset(r.Context())
	respondJSON(w, http.StatusOK, h.stats.GetSlotsStats(r.Context()))
}
