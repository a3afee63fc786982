package user

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/user/dto"
)

type UseCase interface {
	Register(ctx context.Context, claims *model.AuthClaims, input *dto.RegisterInput) (*model.User, error)
	// SignIn records the visit and lazily creates the profile for accounts
	// that predate profile storage.
	SignIn(ctx context.Context, claims *model.AuthClaims) (*model.User, error)
	GetProfile(ctx context.Context, uid string) (*model.User, error)
	UpdateProfile(ctx context.Context, uid string, input *dto.UpdateProfileInput) (*model.User, error)
	SyncCart(ctx context.Context, uid string, items []model.CartItem) (*model.User, error)
	AddToCart(ctx context.Context, uid string, input *dto.CartAddInput) (*model.User, error)
	RemoveFromCart(ctx context.Context, uid string, productID int, size string) (*model.User, error)
	SyncWishlist(ctx context.Context, uid string, productIDs []int) (*model.User, error)
	ToggleWishlist(ctx context.Context, uid string, productID int) (*model.User, bool, error)
	ListAll(ctx context.Context) ([]model.UserSummary, error)
	Stats(ctx context.Context) (*model.UserStats, error)
	Delete(ctx context.Context, uid string) error
}
