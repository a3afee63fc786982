package dto

import "github.com/nextgencodex-com/Vengase-backend/internal/model"

type CreateAdminInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName" validate:"max=200"`
}

type MakeAdminInput struct {
	Email string `json:"email" validate:"required,email"`
}

// RemoveAdminInput identifies the target by uid or, failing that, email.
type RemoveAdminInput struct {
	UID   string `json:"uid"`
	Email string `json:"email" validate:"omitempty,email"`
}

type DashboardStats struct {
	Users  *model.UserStats  `json:"users"`
	Orders *model.OrderStats `json:"orders"`
}
