package user

import (
	"context"

	"github.com/nextgencodex-com/Vengase-backend/internal/model"
)

type Repository interface {
	Create(ctx context.Context, u *model.User) error
	FindByUID(ctx context.Context, uid string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	UpdateFields(ctx context.Context, uid string, fields map[string]interface{}) error
}
