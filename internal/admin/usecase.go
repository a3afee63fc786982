package admin

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/admin/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

// UserStatsProvider and OrderStatsProvider feed the dashboard aggregates.
type UserStatsProvider interface {
	Stats(ctx context.Context) (*model.UserStats, error)
}

type OrderStatsProvider interface {
	Stats(ctx context.Context) (*model.OrderStats, error)
}

type UseCase interface {
	// CreateAdmin provisions a fresh provider account with the admin claim
	// already set.
	CreateAdmin(ctx context.Context, input *dto.CreateAdminInput) (*model.Admin, error)
	// MakeAdmin promotes an existing account by email; promoting an admin
	// again is a no-op success.
	MakeAdmin(ctx context.Context, email string) (*model.Admin, error)
	// RemoveAdmin revokes the claim and marks the local record revoked; the
	// provider account survives.
	RemoveAdmin(ctx context.Context, uid string) error
	// ListAdmins reports provider accounts currently holding the admin
	// claim, enriched with local login bookkeeping where present.
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	Stats(ctx context.Context) (*dto.DashboardStats, error)
	// RecordLogin bumps the admin's login bookkeeping; failures are logged
	// and swallowed by callers.
	RecordLogin(ctx context.Context, uid string) error
}
