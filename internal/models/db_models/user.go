package db_models

import "strings"

type UserType string

const (
	UserTypeBuyer  UserType = "buyer"
	UserTypeSeller UserType = "seller"
	UserTypeBoth   UserType = "both"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeBuyer, UserTypeSeller, UserTypeBoth:
		return true
	}
	return false
}

func (t UserType) CanSell() bool {
	return t == UserTypeSeller || t == UserTypeBoth
}

type KYCStatus string

const (
	KYCPending   KYCStatus = "pending"
	KYCSubmitted KYCStatus = "submitted"
	KYCVerified  KYCStatus = "verified"
	KYCRejected  KYCStatus = "rejected"
)

const (
	AuthProviderPassword = "password"
)

type User struct {
	BaseModel
	FirstName       string    `gorm:"size:100;not null"`
	LastName        string    `gorm:"size:100"`
	Email           string    `gorm:"size:255;uniqueIndex;not null"`
	Phone           *string   `gorm:"size:32;uniqueIndex"` // nil for social-only accounts
	PasswordHash    string    // empty for social-only accounts
	UserType        UserType  `gorm:"size:16;not null;default:buyer"`
	KYCStatus       KYCStatus `gorm:"column:kyc_status;size:16;not null;default:pending"`
	ProfileImageURL *string
	AuthProvider    string `gorm:"size:32;not null;default:password"`
	IsActive        bool   `gorm:"not null;default:true"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
