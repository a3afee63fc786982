package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/user"
	"github.com/nextgencodex-com/Vengase-backend/internal/user/dto"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	copied := *u
	r.users[u.UID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByUID(_ context.Context, uid string) (*model.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]model.User, error) {
	all := []model.User{}
	for _, u := range r.users {
		all = append(all, *u)
	}
	return all, nil
}

func (r *fakeUserRepo) UpdateFields(_ context.Context, uid string, fields map[string]interface{}) error {
	u := r.users[uid]
	for key, value := range fields {
		switch key {
		case "firstName":
			u.FirstName = value.(string)
		case "lastName":
			u.LastName = value.(string)
		case "displayName":
			u.DisplayName = value.(string)
		case "phone":
			u.Phone = value.(string)
		case "addresses":
			u.Addresses = value.([]string)
		case "preferences":
			u.Preferences = value.(model.Preferences)
		case "cart":
			u.Cart = value.([]model.CartItem)
		case "wishlist":
			u.Wishlist = value.([]int)
		case "isActive":
			u.IsActive = value.(bool)
		case "deletedAt":
			t := value.(time.Time)
			u.DeletedAt = &t
		case "updatedAt":
			u.UpdatedAt = value.(time.Time)
		}
	}
	return nil
}

var _ user.Repository = (*fakeUserRepo)(nil)

func testClaims(uid string) *model.AuthClaims {
	return &model.AuthClaims{UID: uid, Email: uid + "@example.com"}
}

func newTestUseCase(repo *fakeUserRepo) user.UseCase {
	return NewUserUseCase(repo, zap.NewNop())
}

func registered(t *testing.T, uc user.UseCase, uid string) *model.User {
	t.Helper()
	u, err := uc.Register(context.Background(), testClaims(uid), &dto.RegisterInput{})
	require.NoError(t, err)
	return u
}

func TestRegisterDuplicate(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Register(ctx, testClaims("u1"), &dto.RegisterInput{})
	require.NoError(t, err)

	_, err = uc.Register(ctx, testClaims("u1"), &dto.RegisterInput{})
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.Equal(t, "User profile already exists", apperr.Message(err))
}

func TestRegisterDisplayNameFromEmail(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	u, err := uc.Register(context.Background(), testClaims("u1"), &dto.RegisterInput{})
	require.NoError(t, err)
	assert.Equal(t, "u1", u.DisplayName)
	assert.True(t, u.IsActive)
	assert.Empty(t, u.Cart)
	assert.Empty(t, u.Wishlist)
}

func TestRegisterDisplayNameFromNames(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	u, err := uc.Register(context.Background(), testClaims("u1"), &dto.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", u.DisplayName)
}

func TestSignInCreatesMissingProfile(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()

	u, err := uc.SignIn(ctx, testClaims("u1"))
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UID)

	// Second sign-in returns the same profile, no duplicate.
	again, err := uc.SignIn(ctx, testClaims("u1"))
	require.NoError(t, err)
	assert.Equal(t, u.CreatedAt, again.CreatedAt)
}

func TestAddToCartMergesSameProductAndSize(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	_, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "M", Quantity: 2})
	require.NoError(t, err)

	u, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "M", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, u.Cart, 1)
	assert.Equal(t, 5, u.Cart[0].Quantity)
}

func TestAddToCartDifferentSizesStaySeparate(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	_, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "M", Quantity: 1})
	require.NoError(t, err)

	u, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "L", Quantity: 1})
	require.NoError(t, err)
	assert.Len(t, u.Cart, 2)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	registered(t, uc, "u1")

	u, err := uc.AddToCart(context.Background(), "u1", &dto.CartAddInput{ProductID: 1000, Size: "M"})
	require.NoError(t, err)
	require.Len(t, u.Cart, 1)
	assert.Equal(t, 1, u.Cart[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	_, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "M", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "L", Quantity: 1})
	require.NoError(t, err)

	u, err := uc.RemoveFromCart(ctx, "u1", 1000, "M")
	require.NoError(t, err)
	require.Len(t, u.Cart, 1)
	assert.Equal(t, "L", u.Cart[0].Size)
}

func TestSyncCartOverwrites(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	_, err := uc.AddToCart(ctx, "u1", &dto.CartAddInput{ProductID: 1000, Size: "M", Quantity: 9})
	require.NoError(t, err)

	u, err := uc.SyncCart(ctx, "u1", []model.CartItem{
		{ProductID: 2000, Size: "S", Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, u.Cart, 1)
	assert.Equal(t, 2000, u.Cart[0].ProductID)
}

func TestToggleWishlistInvolution(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	u, added, err := uc.ToggleWishlist(ctx, "u1", 1000)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []int{1000}, u.Wishlist)

	u, added, err = uc.ToggleWishlist(ctx, "u1", 1000)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, u.Wishlist)
}

func TestToggleWishlistKeepsOtherEntries(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")

	_, _, err := uc.ToggleWishlist(ctx, "u1", 1000)
	require.NoError(t, err)
	_, _, err = uc.ToggleWishlist(ctx, "u1", 1001)
	require.NoError(t, err)

	u, _, err := uc.ToggleWishlist(ctx, "u1", 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1001}, u.Wishlist)
}

func TestDeleteSoftDeletes(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")
	registered(t, uc, "u2")

	require.NoError(t, uc.Delete(ctx, "u1"))

	// The profile document survives and stays fetchable.
	u, err := uc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, u.IsActive)
	assert.NotNil(t, u.DeletedAt)

	// But it disappears from the listing.
	all, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "u2", all[0].UID)
}

func TestStatsCountsActive(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()
	registered(t, uc, "u1")
	registered(t, uc, "u2")
	require.NoError(t, uc.Delete(ctx, "u2"))

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 1, stats.ActiveUsers)
}

func TestUpdateProfileRebuildsDisplayName(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Register(ctx, testClaims("u1"), &dto.RegisterInput{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	last := "Byron"
	u, err := uc.UpdateProfile(ctx, "u1", &dto.UpdateProfileInput{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Ada Byron", u.DisplayName)
}

func TestGetProfileMissing(t *testing.T) {
	uc := newTestUseCase(newFakeUserRepo())

	_, err := uc.GetProfile(context.Background(), "ghost")
	assert.True(t, apperr.IsNotFound(err))
}
