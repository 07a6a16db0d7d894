package user

import (
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/pkg/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AssignLocationRequest struct {
	UserID     int64 `json:"user_id" validate:"required"`
	LocationID int64 `json:"location_id" validate:"required"`
}

type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	IsSuperuser bool   `json:"is_superuser"`
	LocationID  *int64 `json:"location_id"`
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
}

func ToUserResponse(u *domainUser.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		LocationID:  u.LocationID,
	}
}

func toAuthResponse(u *domainUser.User, pair *utils.TokenPair) *AuthResponse {
	return &AuthResponse{
		User:         ToUserResponse(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}
