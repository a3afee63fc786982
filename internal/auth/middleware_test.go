package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

type stubVerifier struct {
	claims *model.AuthClaims
	err    error
}

func (s *stubVerifier) VerifyIDToken(context.Context, string) (*model.AuthClaims, error) {
	return s.claims, s.err
}

type stubGranter struct {
	granted []string
	err     error
}

func (s *stubGranter) GrantAdminClaim(_ context.Context, uid string) error {
	s.granted = append(s.granted, uid)
	return s.err
}

func echoClaims(t *testing.T, got **model.AuthClaims) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateMissingToken(t *testing.T) {
	m := NewMiddleware(&stubVerifier{}, &stubGranter{}, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	m.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access token required")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	verifier := &stubVerifier{err: apperr.New(apperr.Forbidden, "Token expired")}
	m := NewMiddleware(verifier, &stubGranter{}, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	m.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token expired")
}

func TestAuthenticateAttachesClaims(t *testing.T) {
	verifier := &stubVerifier{claims: &model.AuthClaims{UID: "u1", Email: "u1@example.com"}}
	m := NewMiddleware(verifier, &stubGranter{}, nil, zap.NewNop())

	var got *model.AuthClaims
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	m.Authenticate(echoClaims(t, &got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u1", got.UID)
}

func TestOptionalAuthLetsGuestsThrough(t *testing.T) {
	m := NewMiddleware(&stubVerifier{}, &stubGranter{}, nil, zap.NewNop())

	var got *model.AuthClaims
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	m.OptionalAuth(echoClaims(t, &got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func TestOptionalAuthIgnoresBadToken(t *testing.T) {
	verifier := &stubVerifier{err: apperr.New(apperr.Forbidden, "Invalid token format")}
	m := NewMiddleware(verifier, &stubGranter{}, nil, zap.NewNop())

	var got *model.AuthClaims
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer junk")
	m.OptionalAuth(echoClaims(t, &got)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got)
}

func adminRequest(m *Middleware, claims *model.AuthClaims) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), claimsKey, claims))
	}
	m.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rec, req)
	return rec
}

func TestRequireAdminNoClaims(t *testing.T) {
	m := NewMiddleware(&stubVerifier{}, &stubGranter{}, nil, zap.NewNop())
	rec := adminRequest(m, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestRequireAdminDeniesNonAdmin(t *testing.T) {
	m := NewMiddleware(&stubVerifier{}, &stubGranter{}, nil, zap.NewNop())
	rec := adminRequest(m, &model.AuthClaims{UID: "u1", Email: "u1@example.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
}

func TestRequireAdminAcceptsClaimHolder(t *testing.T) {
	granter := &stubGranter{}
	m := NewMiddleware(&stubVerifier{}, granter, nil, zap.NewNop())
	rec := adminRequest(m, &model.AuthClaims{UID: "u1", Admin: true})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, granter.granted)
}

func TestRequireAdminAllowListGrantsClaim(t *testing.T) {
	granter := &stubGranter{}
	m := NewMiddleware(&stubVerifier{}, granter, []string{"Boss@Example.com"}, zap.NewNop())

	rec := adminRequest(m, &model.AuthClaims{UID: "u1", Email: "boss@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"u1"}, granter.granted)
}

func TestRequireAdminAllowListGrantFailureStillAuthorizes(t *testing.T) {
	granter := &stubGranter{err: apperr.New(apperr.Upstream, "provider down")}
	m := NewMiddleware(&stubVerifier{}, granter, []string{"boss@example.com"}, zap.NewNop())

	rec := adminRequest(m, &model.AuthClaims{UID: "u1", Email: "boss@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
}
