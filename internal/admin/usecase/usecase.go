package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/admin"
	"github.com/nextgencodex-com/Vengase-backend/internal/admin/dto"
	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

// listUsersMax caps the provider directory scan when listing admins.
const listUsersMax = 1000

type adminUseCase struct {
	repo       admin.Repository
	identity   admin.IdentityProvider
	userStats  admin.UserStatsProvider
	orderStats admin.OrderStatsProvider
	logger     *zap.Logger
}

func NewAdminUseCase(
	repo admin.Repository,
	identity admin.IdentityProvider,
	userStats admin.UserStatsProvider,
	orderStats admin.OrderStatsProvider,
	log *zap.Logger,
) admin.UseCase {
	return &adminUseCase{
		repo:       repo,
		identity:   identity,
		userStats:  userStats,
		orderStats: orderStats,
		logger:     log,
	}
}

func (uc *adminUseCase) CreateAdmin(ctx context.Context, input *dto.CreateAdminInput) (*model.Admin, error) {
	account, err := uc.identity.CreateUser(ctx, input.Email, input.Password, input.DisplayName)
	if err != nil {
		return nil, err
	}
	if err := uc.identity.GrantAdminClaim(ctx, account.UID); err != nil {
		return nil, apperr.Wrap(apperr.Upstream, "granting admin claim", err)
	}

	record := adminRecord(account)
	if err := uc.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	uc.logger.Info("admin account created", zap.String("email", input.Email))
	return record, nil
}

// MakeAdmin is idempotent: promoting an account that already holds the claim
// just refreshes the local record.
func (uc *adminUseCase) MakeAdmin(ctx context.Context, email string) (*model.Admin, error) {
	account, err := uc.identity.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !account.Admin {
		if err := uc.identity.GrantAdminClaim(ctx, account.UID); err != nil {
			return nil, apperr.Wrap(apperr.Upstream, "granting admin claim", err)
		}
	}

	existing, err := uc.repo.FindByUID(ctx, account.UID)
	if err != nil {
		return nil, err
	}

	record := adminRecord(account)
	if existing != nil {
		record.CreatedAt = existing.CreatedAt
		record.LastLogin = existing.LastLogin
		record.LoginCount = existing.LoginCount
	}
	if err := uc.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	uc.logger.Info("admin promoted", zap.String("email", email))
	return record, nil
}

// RemoveAdmin drops the provider claim and marks the local record revoked.
// The account itself is never deleted.
func (uc *adminUseCase) RemoveAdmin(ctx context.Context, uid string) error {
	if _, err := uc.identity.GetUser(ctx, uid); err != nil {
		return err
	}
	if err := uc.identity.RevokeAdminClaim(ctx, uid); err != nil {
		return apperr.Wrap(apperr.Upstream, "revoking admin claim", err)
	}

	fields := map[string]interface{}{
		"status":    model.AdminStatusRevoked,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return err
	}
	uc.logger.Info("admin revoked", zap.String("uid", uid))
	return nil
}

// ListAdmins scans the provider directory for accounts holding the admin
// claim, folding in local login bookkeeping where a record exists.
func (uc *adminUseCase) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	accounts, err := uc.identity.ListUsers(ctx, listUsersMax)
	if err != nil {
		return nil, err
	}

	admins := []model.Admin{}
	for _, account := range accounts {
		if !account.Admin {
			continue
		}

		entry := model.Admin{
			UID:           account.UID,
			Email:         account.Email,
			DisplayName:   account.DisplayName,
			EmailVerified: account.EmailVerified,
			Role:          "admin",
			Status:        model.AdminStatusActive,
			CreatedAt:     account.CreatedAt,
		}
		record, err := uc.repo.FindByUID(ctx, account.UID)
		if err != nil {
			return nil, err
		}
		if record != nil {
			entry.LastLogin = record.LastLogin
			entry.LoginCount = record.LoginCount
			entry.UpdatedAt = record.UpdatedAt
		}
		admins = append(admins, entry)
	}
	return admins, nil
}

func (uc *adminUseCase) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	users, err := uc.userStats.Stats(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderStats.Stats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStats{Users: users, Orders: orders}, nil
}

func (uc *adminUseCase) RecordLogin(ctx context.Context, uid string) error {
	existing, err := uc.repo.FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	now := time.Now()
	fields := map[string]interface{}{
		"lastLogin":  now,
		"loginCount": existing.LoginCount + 1,
		"updatedAt":  now,
	}
	return uc.repo.UpdateFields(ctx, uid, fields)
}

func adminRecord(account *model.IdentityUser) *model.Admin {
	now := time.Now()
	return &model.Admin{
		UID:           account.UID,
		Email:         account.Email,
		DisplayName:   account.DisplayName,
		EmailVerified: account.EmailVerified,
		Role:          "admin",
		Status:        model.AdminStatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
