package stress

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stressservice "github.com/ruangtenang/backend/internal/service/stress"
	"github.com/ruangtenang/backend/internal/store"
)

func setupRouter() *chi.Mux {
	handler := New(stressservice.NewService(store.NewStressStore()))
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func assessBody(q1, q2, q3, q4, q5 int) []byte {
	payload, _ := json.Marshal(map[string]any{
		"sessionId": "web-abc",
		"question1": q1,
		"question2": q2,
		"question3": q3,
		"question4": q4,
		"question5": q5,
	})
	return payload
}

func TestAssess(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/stress/assess", bytes.NewReader(assessBody(3, 3, 3, 3, 3)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Success     bool   `json:"success"`
		StressScore int    `json:"stressScore"`
		StressLevel string `json:"stressLevel"`
		Assessment  struct {
			ID string `json:"id"`
		} `json:"assessment"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 50, body.StressScore)
	assert.Equal(t, "Medium", body.StressLevel)
	assert.NotEmpty(t, body.Assessment.ID)
}

func TestAssessInvalidAnswers(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/stress/assess", bytes.NewReader(assessBody(0, 3, 9, 3, 3)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Invalid assessment data", body.Error)
	assert.Equal(t, []string{"question1", "question3"}, body.Details)
}

func TestAssessMissingAnswersRejected(t *testing.T) {
	r := setupRouter()

	// Absent questions decode to zero, which is out of range.
	req := httptest.NewRequest(http.MethodPost, "/stress/assess", bytes.NewReader([]byte(`{"sessionId":"web-abc"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHistoryEmptyAndLimit(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/stress/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Success     bool             `json:"success"`
		Assessments []map[string]any `json:"assessments"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Assessments)

	for i := 0; i < 9; i++ {
		req := httptest.NewRequest(http.MethodPost, "/stress/assess", bytes.NewReader(assessBody(2, 2, 2, 2, 2)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Default window is 7.
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stress/history", nil))
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Assessments, 7)

	// Explicit limit wins; junk limits fall back to the default.
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stress/history?limit=2", nil))
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Assessments, 2)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/stress/history?limit=abc", nil))
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Assessments, 7)
}
