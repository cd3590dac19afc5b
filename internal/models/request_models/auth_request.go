package request_models

type RegisterRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=32"`
	Password  string `json:"password" binding:"required,min=6"`
	UserType  string `json:"userType" binding:"required,oneof=buyer seller both"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SocialAuthRequest struct {
	Provider string `json:"provider" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName       *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,min=1,max=32"`
	UserType        *string `json:"userType" binding:"omitempty,oneof=buyer seller both"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,url"`
}
