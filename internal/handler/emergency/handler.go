package emergency

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	emergencyService "github.com/ruangtenang/backend/internal/service/emergency"
	"github.com/ruangtenang/backend/pkg/utils"
)

// Handler exposes the emergency-contact endpoints. The listing endpoint is an
// administrative surface; access control is expected to be layered in front
// of it by the deployment.
type Handler struct {
	emergencySvc *emergencyService.Service
}

func New(emergencySvc *emergencyService.Service) *Handler {
	return &Handler{emergencySvc: emergencySvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/emergency", h.handleSubmit)
	r.Get("/emergency", h.handleList)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Message string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.emergencySvc.Submit(r.Context(), payload.Name, payload.Contact, payload.Message)
	if err != nil {
		if errors.Is(err, emergencyService.ErrContactRequired) {
			utils.RespondValidationError(w, "Invalid emergency request data", []string{"contact"})
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to create emergency request")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"emergencyRequest": result.Request,
		"emailSent":        result.EmailSent,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requests, err := h.emergencySvc.List(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "Failed to fetch emergency requests")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"requests": requests,
	})
}
