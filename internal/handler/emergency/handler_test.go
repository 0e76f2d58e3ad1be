package emergency

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	emergencyservice "github.com/ruangtenang/backend/internal/service/emergency"
	"github.com/ruangtenang/backend/internal/service/mail"
	"github.com/ruangtenang/backend/internal/store"
)

type stubNotifier struct {
	sent bool
}

func (s *stubNotifier) Notify(context.Context, mail.Notice) bool { return s.sent }

func setupRouter(notifier mail.Notifier) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := emergencyservice.NewService(store.NewEmergencyStore(), notifier, logger)

	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r
}

func submit(r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/emergency", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSubmitEmergency(t *testing.T) {
	r := setupRouter(&stubNotifier{sent: true})

	resp := submit(r, map[string]string{
		"name":    "Budi",
		"contact": "+62 812 0000 0000",
		"message": "tolong hubungi saya",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success          bool `json:"success"`
		EmailSent        bool `json:"emailSent"`
		EmergencyRequest struct {
			ID         string `json:"id"`
			IsResolved bool   `json:"isResolved"`
		} `json:"emergencyRequest"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.EmailSent)
	assert.False(t, body.EmergencyRequest.IsResolved)
	assert.NotEmpty(t, body.EmergencyRequest.ID)
}

func TestSubmitEmergencyMailFailureStillSucceeds(t *testing.T) {
	r := setupRouter(&stubNotifier{sent: false})

	resp := submit(r, map[string]string{"contact": "+62 812 0000 0000"})
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success   bool `json:"success"`
		EmailSent bool `json:"emailSent"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.False(t, body.EmailSent)
}

func TestSubmitEmergencyMissingContact(t *testing.T) {
	r := setupRouter(&stubNotifier{sent: true})

	resp := submit(r, map[string]string{"name": "Budi"})
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// Nothing persisted.
	list := httptest.NewRecorder()
	r.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/emergency", nil))
	var body struct {
		Requests []map[string]any `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &body))
	assert.Empty(t, body.Requests)
}

func TestListEmergencyNewestFirst(t *testing.T) {
	r := setupRouter(&stubNotifier{sent: true})

	submit(r, map[string]string{"contact": "first"})
	submit(r, map[string]string{"contact": "second"})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/emergency", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success  bool `json:"success"`
		Requests []struct {
			Contact string `json:"contact"`
		} `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body.Requests, 2)
	assert.Equal(t, "second", body.Requests[0].Contact)
	assert.Equal(t, "first", body.Requests[1].Contact)
}
