package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	var gotUserID string
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("with header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(UserIDHeader, "u-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "u-1", gotUserID)
	})

	t.Run("without header", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), UserIDHeader)
	})
}

func TestOptionalAuth(t *testing.T) {
	var ok bool
	handler := OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUserID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UserIDHeader, "u-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, ok)
}

func TestGetUserID_Empty(t *testing.T) {
	_, ok := GetUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}

type observation struct {
	method, path string
	status       int
}

type fakeRecorder struct{ observed []observation }

func (f *fakeRecorder) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	f.observed = append(f.observed, observation{method: method, path: path, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeRecorder{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(recorder))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments/a-42", nil))

	require.Len(t, recorder.observed, 1)
	assert.Equal(t, observation{method: http.MethodGet, path: "/appointments/{id}", status: http.StatusNotFound}, recorder.observed[0])
}
