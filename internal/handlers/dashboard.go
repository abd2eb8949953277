package handlers

import (
	"net/http"

	"go.uber.org/zap"

	mw "dojolog/internal/middleware"
	"dojolog/internal/services"
)

type DashboardHandler struct {
	svc    *services.EntryService
	logger *zap.Logger
}

func NewDashboardHandler(svc *services.EntryService, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Get godoc
// @Summary Journal page data
// @Description Full ascending history, the 14 most recent entries, today's date and lifetime gym/BJJ counters. Signed-out callers get the empty shape.
// @Tags entries
// @Produce json
// @Success 200 {object} OverviewDTO
// @Failure 500 {object} errorResponse
// @Router /entries [get]
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context(), mw.UserID(r.Context()))
	if err != nil {
		h.logger.Error("could not load entries", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load entries")
		return
	}
	writeJSON(w, http.StatusOK, ToOverviewDTO(overview))
}
