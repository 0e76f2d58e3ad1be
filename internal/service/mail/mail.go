// Package mail delivers emergency notifications through an external email
// provider. Delivery is best-effort: a failure is logged and reported as a
// boolean, never as an error that could fail the request that triggered it.
package mail

import (
	"context"
	"time"
)

// Notice carries the fields of an emergency submission worth forwarding.
type Notice struct {
	Name    string
	Contact string
	Message string
	At      time.Time
}

// Notifier dispatches a notice and reports whether delivery succeeded.
type Notifier interface {
	Notify(ctx context.Context, n Notice) bool
}
