package emergency

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ruangtenang/backend/internal/model/emergency"
	"github.com/ruangtenang/backend/internal/service/mail"
	"github.com/ruangtenang/backend/internal/store"
)

var (
	ErrContactRequired = errors.New("contact is required")
	ErrNotFound        = errors.New("emergency request not found")
)

// Result pairs the persisted request with the notification outcome. The
// record always survives; EmailSent only reports whether the best-effort
// dispatch went through.
type Result struct {
	Request   emergency.Request
	EmailSent bool
}

// Service persists emergency-contact requests and forwards them to the
// on-call notifier.
type Service struct {
	requests *store.EmergencyStore
	notifier mail.Notifier
	logger   *slog.Logger
}

func NewService(requests *store.EmergencyStore, notifier mail.Notifier, logger *slog.Logger) *Service {
	return &Service{requests: requests, notifier: notifier, logger: logger}
}

// Submit stores the request first, then dispatches the notification. A
// dispatch failure is logged and reflected in Result.EmailSent, never
// propagated; the submitted request must not be lost over a mail outage.
func (s *Service) Submit(ctx context.Context, name, contact, message string) (Result, error) {
	if strings.TrimSpace(contact) == "" {
		return Result{}, ErrContactRequired
	}

	created, err := s.requests.Create(emergency.Request{
		Name:    strings.TrimSpace(name),
		Contact: strings.TrimSpace(contact),
		Message: strings.TrimSpace(message),
	})
	if err != nil {
		return Result{}, err
	}

	sent := s.notifier.Notify(ctx, mail.Notice{
		Name:    created.Name,
		Contact: created.Contact,
		Message: created.Message,
		At:      time.Now(),
	})
	if !sent {
		s.logger.Error("failed to send emergency notification email", "request_id", created.ID)
	}

	return Result{Request: created, EmailSent: sent}, nil
}

// List returns every request, most recent first. Access control is expected
// to sit in front of this at the routing layer.
func (s *Service) List(_ context.Context) ([]emergency.Request, error) {
	return s.requests.All()
}

// Resolve marks a request handled. Part of the operator workflow; not
// exposed over the public HTTP surface.
func (s *Service) Resolve(_ context.Context, id string) (emergency.Request, error) {
	resolved, err := s.requests.Resolve(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return emergency.Request{}, ErrNotFound
		}
		return emergency.Request{}, err
	}
	return resolved, nil
}
