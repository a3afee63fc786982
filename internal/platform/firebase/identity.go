package firebase

import (
	"context"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

// Identity adapts the provider's auth client to the narrow interfaces the
// auth middleware and admin usecase consume.
type Identity struct {
	client *auth.Client
}

func NewIdentity(client *auth.Client) *Identity {
	return &Identity{client: client}
}

// VerifyIDToken decodes a bearer token into typed claims. Failures are
// classified so handlers can surface the matching message; verification is
// never retried.
func (i *Identity) VerifyIDToken(ctx context.Context, idToken string) (*model.AuthClaims, error) {
	token, err := i.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		switch {
		case auth.IsIDTokenExpired(err):
			return nil, apperr.Wrap(apperr.Forbidden, "Token expired", err)
		case auth.IsIDTokenInvalid(err):
			return nil, apperr.Wrap(apperr.Forbidden, "Invalid token format", err)
		default:
			return nil, apperr.Wrap(apperr.Forbidden, "Invalid or expired token", err)
		}
	}
	return claimsFromToken(token), nil
}

func claimsFromToken(token *auth.Token) *model.AuthClaims {
	claims := &model.AuthClaims{UID: token.UID}
	if v, ok := token.Claims["email"].(string); ok {
		claims.Email = v
	}
	if v, ok := token.Claims["email_verified"].(bool); ok {
		claims.EmailVerified = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		claims.Name = v
	}
	if v, ok := token.Claims["admin"].(bool); ok {
		claims.Admin = v
	}
	return claims
}

func (i *Identity) GrantAdminClaim(ctx context.Context, uid string) error {
	return i.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{
		"admin":     true,
		"role":      "admin",
		"grantedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

func (i *Identity) RevokeAdminClaim(ctx context.Context, uid string) error {
	return i.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{
		"admin": false,
	})
}

func (i *Identity) CreateUser(ctx context.Context, email, password, displayName string) (*model.IdentityUser, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(true)

	record, err := i.client.CreateUser(ctx, params)
	if err != nil {
		switch {
		case auth.IsEmailAlreadyExists(err):
			return nil, apperr.Wrap(apperr.Conflict, "Email already exists", err)
		default:
			return nil, apperr.Wrap(apperr.Upstream, "creating provider user", err)
		}
	}
	return identityUserFromRecord(record), nil
}

func (i *Identity) GetUser(ctx context.Context, uid string) (*model.IdentityUser, error) {
	record, err := i.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, apperr.Wrap(apperr.NotFound, "User not found", err)
		}
		return nil, apperr.Wrap(apperr.Upstream, "fetching provider user", err)
	}
	return identityUserFromRecord(record), nil
}

func (i *Identity) GetUserByEmail(ctx context.Context, email string) (*model.IdentityUser, error) {
	record, err := i.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, apperr.Wrap(apperr.NotFound, "User not found", err)
		}
		return nil, apperr.Wrap(apperr.Upstream, "fetching provider user", err)
	}
	return identityUserFromRecord(record), nil
}

// ListUsers pages through the provider's user directory, up to max entries.
func (i *Identity) ListUsers(ctx context.Context, max int) ([]model.IdentityUser, error) {
	iter := i.client.Users(ctx, "")
	users := make([]model.IdentityUser, 0, 64)
	for len(users) < max {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "listing provider users", err)
		}
		users = append(users, *identityUserFromRecord(record.UserRecord))
	}
	return users, nil
}

func identityUserFromRecord(record *auth.UserRecord) *model.IdentityUser {
	user := &model.IdentityUser{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
		Disabled:      record.Disabled,
	}
	if record.CustomClaims != nil {
		if v, ok := record.CustomClaims["admin"].(bool); ok {
			user.Admin = v
		}
	}
	if record.UserMetadata != nil {
		user.CreatedAt = time.UnixMilli(record.UserMetadata.CreationTimestamp).UTC()
		if record.UserMetadata.LastLogInTimestamp > 0 {
			last := time.UnixMilli(record.UserMetadata.LastLogInTimestamp).UTC()
			user.LastSignIn = &last
		}
	}
	return user
}
