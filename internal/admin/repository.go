package admin

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

type Repository interface {
	Upsert(ctx context.Context, a *model.Admin) error
	FindByUID(ctx context.Context, uid string) (*model.Admin, error)
	FindAll(ctx context.Context) ([]model.Admin, error)
	UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error
}

// IdentityProvider is the slice of the identity service admin management
// needs: account creation, lookup and custom-claim control.
type IdentityProvider interface {
	CreateUser(ctx context.Context, email, password, displayName string) (*model.IdentityUser, error)
	GetUser(ctx context.Context, uid string) (*model.IdentityUser, error)
	GetUserByEmail(ctx context.Context, email string) (*model.IdentityUser, error)
	GrantAdminClaim(ctx context.Context, uid string) error
	RevokeAdminClaim(ctx context.Context, uid string) error
	ListUsers(ctx context.Context, max int) ([]model.IdentityUser, error)
}
