package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/pkg/httpres"
)

// TokenVerifier decodes a bearer token into typed claims.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*model.AuthClaims, error)
}

// ClaimGranter promotes an account to admin at the identity provider.
type ClaimGranter interface {
	GrantAdminClaim(ctx context.Context, uid string) error
}

type contextKey struct{}

var claimsKey contextKey

// ClaimsFromContext returns the verified claims attached by Authenticate or
// OptionalAuth, or nil when the request carried no valid token.
func ClaimsFromContext(ctx context.Context) *model.AuthClaims {
	claims, _ := ctx.Value(claimsKey).(*model.AuthClaims)
	return claims
}

type Middleware struct {
	verifier    TokenVerifier
	granter     ClaimGranter
	adminEmails map[string]struct{}
	logger      *zap.Logger
}

func NewMiddleware(verifier TokenVerifier, granter ClaimGranter, adminEmails []string, log *zap.Logger) *Middleware {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}
	return &Middleware{
		verifier:    verifier,
		granter:     granter,
		adminEmails: allowed,
		logger:      log,
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// Authenticate requires a valid bearer token and stores its claims on the
// request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			httpres.Error(w, http.StatusUnauthorized, "Access token required", nil)
			return
		}

		claims, err := m.verifier.VerifyIDToken(r.Context(), token)
		if err != nil {
			m.logger.Warn("token verification failed", zap.Error(err))
			httpres.Error(w, apperr.HTTPStatus(err), apperr.Message(err), nil)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches claims when a valid token is present but lets the
// request through either way. Used for guest checkout.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.verifier.VerifyIDToken(r.Context(), token)
		if err != nil {
			m.logger.Debug("ignoring invalid optional token", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route on the admin claim or allow-list membership.
// It must run after Authenticate. Allow-listed accounts that lack the claim
// get it granted in the background so subsequent tokens carry it.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			httpres.Error(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		if !claims.Admin {
			if _, ok := m.adminEmails[strings.ToLower(claims.Email)]; !ok {
				httpres.Error(w, http.StatusForbidden, "Admin access required", nil)
				return
			}
			// Allow-listed but no claim yet: grant it best-effort. The
			// current request proceeds on list membership alone.
			if err := m.granter.GrantAdminClaim(r.Context(), claims.UID); err != nil {
				m.logger.Warn("failed to grant admin claim",
					zap.String("uid", claims.UID), zap.Error(err))
			} else {
				m.logger.Info("admin claim granted from allow-list",
					zap.String("email", claims.Email))
			}
		}

		next.ServeHTTP(w, r)
	})
}
