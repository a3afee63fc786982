package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nextgencodex-com/Vengase-backend/internal/apperr"
	"github.com/nextgencodex-com/Vengase-backend/internal/model"
	"github.com/nextgencodex-com/Vengase-backend/internal/query"
	"github.com/nextgencodex-com/Vengase-backend/internal/user"
	"github.com/nextgencodex-com/Vengase-backend/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, log *zap.Logger) user.UseCase {
	return &userUseCase{repo: repo, logger: log}
}

func (uc *userUseCase) Register(ctx context.Context, claims *model.AuthClaims, input *dto.RegisterInput) (*model.User, error) {
	existing, err := uc.repo.FindByUID(ctx, claims.UID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "User profile already exists")
	}

	now := time.Now()
	u := &model.User{
		UID:         claims.UID,
		Email:       claims.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DisplayName: displayName(input.FirstName, input.LastName, claims),
		Phone:       input.Phone,
		Cart:        []model.CartItem{},
		Wishlist:    []int{},
		Addresses:   []string{},
		Preferences: model.Preferences{Notifications: true, Newsletter: false},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.logger.Info("user profile created", zap.String("uid", claims.UID))
	return u, nil
}

// SignIn returns the caller's profile, creating a minimal one for accounts
// that signed up before profiles were stored.
func (uc *userUseCase) SignIn(ctx context.Context, claims *model.AuthClaims) (*model.User, error) {
	existing, err := uc.repo.FindByUID(ctx, claims.UID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return uc.Register(ctx, claims, &dto.RegisterInput{})
}

func (uc *userUseCase) GetProfile(ctx context.Context, uid string) (*model.User, error) {
	u, err := uc.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.New(apperr.NotFound, "User profile not found")
	}
	return u, nil
}

func (uc *userUseCase) UpdateProfile(ctx context.Context, uid string, input *dto.UpdateProfileInput) (*model.User, error) {
	existing, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{"updatedAt": time.Now()}
	first, last := existing.FirstName, existing.LastName
	if input.FirstName != nil {
		first = *input.FirstName
		fields["firstName"] = first
	}
	if input.LastName != nil {
		last = *input.LastName
		fields["lastName"] = last
	}
	if input.FirstName != nil || input.LastName != nil {
		fields["displayName"] = strings.TrimSpace(first + " " + last)
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Addresses != nil {
		fields["addresses"] = *input.Addresses
	}
	if input.Preferences != nil {
		fields["preferences"] = *input.Preferences
	}

	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, uid)
}

// SyncCart replaces the stored cart wholesale with the client's copy.
func (uc *userUseCase) SyncCart(ctx context.Context, uid string, items []model.CartItem) (*model.User, error) {
	if _, err := uc.GetProfile(ctx, uid); err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	fields := map[string]interface{}{
		"cart":      items,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, uid)
}

// AddToCart merges into the line keyed (productId, size): quantities sum and
// the line's UpdatedAt refreshes instead of a duplicate appearing.
func (uc *userUseCase) AddToCart(ctx context.Context, uid string, input *dto.CartAddInput) (*model.User, error) {
	existing, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	now := time.Now()
	cart := existing.Cart
	merged := false
	for i := range cart {
		if cart[i].ProductID == input.ProductID && cart[i].Size == input.Size {
			cart[i].Quantity += quantity
			cart[i].UpdatedAt = now
			merged = true
			break
		}
	}
	if !merged {
		cart = append(cart, model.CartItem{
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Img:       input.Img,
			Size:      input.Size,
			Quantity:  quantity,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}

	fields := map[string]interface{}{
		"cart":      cart,
		"updatedAt": now,
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, uid)
}

func (uc *userUseCase) RemoveFromCart(ctx context.Context, uid string, productID int, size string) (*model.User, error) {
	existing, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	cart := make([]model.CartItem, 0, len(existing.Cart))
	for _, item := range existing.Cart {
		if item.ProductID == productID && item.Size == size {
			continue
		}
		cart = append(cart, item)
	}

	fields := map[string]interface{}{
		"cart":      cart,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, uid)
}

func (uc *userUseCase) SyncWishlist(ctx context.Context, uid string, productIDs []int) (*model.User, error) {
	if _, err := uc.GetProfile(ctx, uid); err != nil {
		return nil, err
	}
	if productIDs == nil {
		productIDs = []int{}
	}
	fields := map[string]interface{}{
		"wishlist":  productIDs,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, err
	}
	return uc.GetProfile(ctx, uid)
}

// ToggleWishlist adds the product when absent and removes it when present.
// The returned bool reports whether it ended up in the wishlist.
func (uc *userUseCase) ToggleWishlist(ctx context.Context, uid string, productID int) (*model.User, bool, error) {
	existing, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, false, err
	}

	wishlist := make([]int, 0, len(existing.Wishlist)+1)
	removed := false
	for _, id := range existing.Wishlist {
		if id == productID {
			removed = true
			continue
		}
		wishlist = append(wishlist, id)
	}
	added := !removed
	if added {
		wishlist = append(wishlist, productID)
	}

	fields := map[string]interface{}{
		"wishlist":  wishlist,
		"updatedAt": time.Now(),
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, false, err
	}
	updated, err := uc.GetProfile(ctx, uid)
	if err != nil {
		return nil, false, err
	}
	return updated, added, nil
}

// ListAll returns active profiles only, newest first. Soft-deleted accounts
// stay out of the listing but keep their documents.
func (uc *userUseCase) ListAll(ctx context.Context) ([]model.UserSummary, error) {
	users, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := query.Filter(users, func(u model.User) bool { return u.IsActive })
	query.SortBy(active, func(a, b model.User) bool { return a.CreatedAt.Before(b.CreatedAt) }, true)

	summaries := make([]model.UserSummary, 0, len(active))
	for _, u := range active {
		summaries = append(summaries, model.UserSummary{
			UID:         u.UID,
			Email:       u.Email,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			DisplayName: u.DisplayName,
			Phone:       u.Phone,
			IsActive:    u.IsActive,
			CreatedAt:   u.CreatedAt,
		})
	}
	return summaries, nil
}

func (uc *userUseCase) Stats(ctx context.Context) (*model.UserStats, error) {
	users, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{TotalUsers: len(users)}
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
	}
	return stats, nil
}

// Delete deactivates the profile instead of removing the document, so order
// history keeps resolving.
func (uc *userUseCase) Delete(ctx context.Context, uid string) error {
	if _, err := uc.GetProfile(ctx, uid); err != nil {
		return err
	}

	now := time.Now()
	fields := map[string]interface{}{
		"isActive":  false,
		"deletedAt": now,
		"updatedAt": now,
	}
	if err := uc.repo.UpdateFields(ctx, uid, fields); err != nil {
		return err
	}
	uc.logger.Info("user profile deactivated", zap.String("uid", uid))
	return nil
}

func displayName(first, last string, claims *model.AuthClaims) string {
	if name := strings.TrimSpace(first + " " + last); name != "" {
		return name
	}
	if claims.Name != "" {
		return claims.Name
	}
	if at := strings.Index(claims.Email, "@"); at > 0 {
		return claims.Email[:at]
	}
	return claims.Email
}
