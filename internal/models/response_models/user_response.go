package response_models

import (
	"gidimart/internal/models/db_models"
	"gidimart/pkg/utils"
)

type UserResponse struct {
	ID              string  `json:"id"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone"`
	UserType        string  `json:"userType"`
	KYCStatus       string  `json:"kycStatus"`
	ProfileImageURL *string `json:"profileImageUrl"`
	AuthProvider    string  `json:"authProvider"`
	IsActive        bool    `json:"isActive"`
	CreatedAt       string  `json:"createdAt"`

	// set on profile reads only
	WalletBalance *int64 `json:"walletBalance,omitempty"`
	EscrowBalance *int64 `json:"escrowBalance,omitempty"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func NewUserResponse(u *db_models.User) UserResponse {
	return UserResponse{
		ID:              u.ID.String(),
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Email:           u.Email,
		Phone:           u.Phone,
		UserType:        string(u.UserType),
		KYCStatus:       string(u.KYCStatus),
		ProfileImageURL: u.ProfileImageURL,
		AuthProvider:    u.AuthProvider,
		IsActive:        u.IsActive,
		CreatedAt:       utils.FormatRFC3339(u.CreatedAt),
	}
}
