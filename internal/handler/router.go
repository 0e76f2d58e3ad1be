package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/ruangtenang/backend/internal/handler/chat"
	emergencyHandler "github.com/ruangtenang/backend/internal/handler/emergency"
	stressHandler "github.com/ruangtenang/backend/internal/handler/stress"
	middlewarePkg "github.com/ruangtenang/backend/internal/middleware"
	chatService "github.com/ruangtenang/backend/internal/service/chat"
	emergencyService "github.com/ruangtenang/backend/internal/service/emergency"
	stressService "github.com/ruangtenang/backend/internal/service/stress"
	"github.com/ruangtenang/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(chatSvc *chatService.Service, stressSvc *stressService.Service, emergencySvc *emergencyService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(chatSvc).RegisterRoutes(api)
		stressHandler.New(stressSvc).RegisterRoutes(api)
		emergencyHandler.New(emergencySvc).RegisterRoutes(api)

		api.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}
