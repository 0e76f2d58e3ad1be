package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatService "github.com/ruangtenang/backend/internal/service/chat"
	"github.com/ruangtenang/backend/pkg/utils"
)

// Handler exposes the supportive-chat endpoints.
type Handler struct {
	chatSvc *chatService.Service
}

func New(chatSvc *chatService.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat/start", h.handleStart)
	r.Post("/chat/message", h.handleMessage)
	r.Post("/chat/end", h.handleEnd)
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.chatSvc.Start(r.Context(), payload.SessionID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionKeyRequired) {
			utils.RespondError(w, http.StatusBadRequest, "Session ID is required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to start chat session")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"chatSession": session,
	})
}

func (h *Handler) handleMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	response, messages, err := h.chatSvc.Respond(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		switch {
		case errors.Is(err, chatService.ErrSessionKeyRequired), errors.Is(err, chatService.ErrMessageRequired):
			utils.RespondError(w, http.StatusBadRequest, "Session ID and message are required")
		case errors.Is(err, chatService.ErrSessionNotFound):
			utils.RespondError(w, http.StatusNotFound, "Chat session not found")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"response": response,
		"messages": messages,
	})
}

func (h *Handler) handleEnd(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.chatSvc.End(r.Context(), payload.SessionID)
	if err != nil {
		if errors.Is(err, chatService.ErrSessionKeyRequired) {
			utils.RespondError(w, http.StatusBadRequest, "Session ID is required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "Failed to end chat session")
		return
	}

	// session is null when no session matched; ending an unknown session is
	// not an error.
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"session": session,
	})
}
