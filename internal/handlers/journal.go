package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	mw "dojolog/internal/middleware"
	"dojolog/internal/services"
)

const maxFormMemory = 1 << 20

type JournalHandler struct {
	svc     *services.EntryService
	metrics *mw.Metrics
	logger  *zap.Logger
}

func NewJournalHandler(svc *services.EntryService, metrics *mw.Metrics, logger *zap.Logger) *JournalHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalHandler{svc: svc, metrics: metrics, logger: logger}
}

// Save godoc
// @Summary Create or replace the entry for a day
// @Description Form-encoded. The entry is keyed by (user, date); saving the same date again overwrites it.
// @Tags entries
// @Accept x-www-form-urlencoded
// @Produce json
// @Param date formData string true "dd/MM/yyyy"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /entries [post]
func (h *JournalHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	if userID != "" {
		if err := parseForm(r); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
	}
	form := services.SaveForm{
		Date:           formValue(r, "date"),
		WeightKg:       formValue(r, "weightKg"),
		TrainedBjj:     formValue(r, "trainedBjj"),
		WentGym:        formValue(r, "wentGym"),
		BjjRatingStars: formValue(r, "bjjRatingStars"),
		GymRatingStars: formValue(r, "gymRatingStars"),
		RatingStars:    formValue(r, "ratingStars"),
		BjjComment:     formValue(r, "bjjComment"),
		GymComment:     formValue(r, "gymComment"),
		RatingComment:  formValue(r, "ratingComment"),
	}

	out, err := h.svc.Save(r.Context(), userID, form)
	if err != nil {
		writeServiceError(w, h.logger, err, "could not save entry")
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveSave(out.Inserted)
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Delete removes the entry named by the form field id.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := mw.UserID(r.Context())
	id := ""
	if userID != "" {
		if err := parseForm(r); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		if v := formValue(r, "id"); v != nil {
			id = *v
		}
	}
	h.delete(w, r, userID, id)
}

// DeleteByID godoc
// @Summary Delete one of the caller's entries
// @Tags entries
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} successResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{id} [delete]
func (h *JournalHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, mw.UserID(r.Context()), chi.URLParam(r, "id"))
}

func (h *JournalHandler) delete(w http.ResponseWriter, r *http.Request, userID, id string) {
	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		writeServiceError(w, h.logger, err, "could not delete entry")
		return
	}
	if h.metrics != nil {
		h.metrics.EntriesDeleted.Inc()
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// parseForm accepts both urlencoded and multipart bodies.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}

// formValue returns nil when the field was not posted at all.
func formValue(r *http.Request, key string) *string {
	vs, ok := r.PostForm[key]
	if !ok || len(vs) == 0 {
		return nil
	}
	v := vs[0]
	return &v
}
