package stress

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	stressService "github.com/ruangtenang/backend/internal/service/stress"
	"github.com/ruangtenang/backend/pkg/utils"
)

// Handler exposes the stress self-assessment endpoints.
type Handler struct {
	stressSvc *stressService.Service
}

func New(stressSvc *stressService.Service) *Handler {
	return &Handler{stressSvc: stressSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/stress/assess", h.handleAssess)
	r.Get("/stress/history", h.handleHistory)
}

func (h *Handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Question1 int    `json:"question1"`
		Question2 int    `json:"question2"`
		Question3 int    `json:"question3"`
		Question4 int    `json:"question4"`
		Question5 int    `json:"question5"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.stressSvc.Assess(r.Context(), stressService.Input{
		SessionKey: payload.SessionID,
		Question1:  payload.Question1,
		Question2:  payload.Question2,
		Question3:  payload.Question3,
		Question4:  payload.Question4,
		Question5:  payload.Question5,
	})
	if err != nil {
		var verr *stressService.ValidationError
		if errors.As(err, &verr) {
			utils.RespondValidationError(w, "Invalid assessment data", verr.Fields)
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create stress assessment")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"assessment":  assessment,
		"stressScore": assessment.StressScore,
		"stressLevel": assessment.StressLevel,
	})
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	// A missing or unparsable limit falls back to the 7-entry trend window.
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	assessments, err := h.stressSvc.History(r.Context(), limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch stress history")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"assessments": assessments,
	})
}
