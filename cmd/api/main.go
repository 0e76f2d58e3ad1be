package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ruangtenang/backend/internal/config"
	"github.com/ruangtenang/backend/internal/handler"
	chatService "github.com/ruangtenang/backend/internal/service/chat"
	emergencyService "github.com/ruangtenang/backend/internal/service/emergency"
	"github.com/ruangtenang/backend/internal/service/mail"
	stressService "github.com/ruangtenang/backend/internal/service/stress"
	"github.com/ruangtenang/backend/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Record stores
	sessions := store.NewChatSessionStore()
	assessments := store.NewStressStore()
	requests := store.NewEmergencyStore()

	// Notification dispatcher; without credentials it degrades to a logged
	// no-op and emergency submissions still succeed.
	notifier := mail.NewSendGrid(mail.SendGridConfig{
		APIKey:     cfg.Mail.APIKey,
		AdminEmail: cfg.Mail.AdminEmail,
		FromEmail:  cfg.Mail.FromEmail,
		BaseURL:    cfg.Mail.BaseURL,
		Timeout:    cfg.Mail.Timeout,
	}, logger)
	if notifier.Disabled() {
		log.Println("SENDGRID_API_KEY not set - emergency emails will not be sent")
	}

	chatSvc := chatService.NewService(sessions, nil)
	stressSvc := stressService.NewService(assessments)
	emergencySvc := emergencyService.NewService(requests, notifier, logger)

	router := handler.NewRouter(chatSvc, stressSvc, emergencySvc)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Ruang Tenang backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
