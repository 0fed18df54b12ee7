package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/bizqueue/BQ-SchedulingService/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func newRouter(parser TokenParser, probe http.HandlerFunc, roles ...string) *mux.Router {
	r := mux.NewRouter()
	sub := r.PathPrefix("/").Subrouter()
	sub.Use(Auth(parser, nopLogger{}))
	for _, role := range roles {
		sub.Use(RequireRole(role, nopLogger{}))
	}
	sub.HandleFunc("/probe", probe).Methods(http.MethodGet)
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	tm := authService.NewTokenManager("test-secret", time.Hour)
	token, err := tm.Issue(42, "OWNER")
	require.NoError(t, err)

	var gotUserID int64
	var gotRole string
	router := newRouter(tm, func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserIDFromContext(r.Context())
		gotRole, _ = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
	assert.Equal(t, "OWNER", gotRole)
}

func TestAuth_MissingHeader(t *testing.T) {
	tm := authService.NewTokenManager("test-secret", time.Hour)
	router := newRouter(tm, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tm := authService.NewTokenManager("test-secret", time.Hour)
	router := newRouter(tm, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Basic abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tm := authService.NewTokenManager("test-secret", time.Hour)
	other := authService.NewTokenManager("other-secret", time.Hour)
	token, err := other.Issue(42, "OWNER")
	require.NoError(t, err)

	router := newRouter(tm, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	tm := authService.NewTokenManager("test-secret", time.Hour)

	ownerToken, err := tm.Issue(1, "OWNER")
	require.NoError(t, err)
	customerToken, err := tm.Issue(2, "CUSTOMER")
	require.NoError(t, err)

	router := newRouter(tm, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, "OWNER")

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
