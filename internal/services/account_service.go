package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gidimart/internal/identity"
	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/internal/models/response_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	SocialAuth(ctx context.Context, request request_models.SocialAuthRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error)
	SubmitKYC(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error
}

type AccountService struct {
	userRepo   repositories.UserRepository
	walletRepo repositories.WalletRepository
	providers  *identity.Registry
	tokens     *utils.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	providers *identity.Registry,
	tokens *utils.TokenManager,
	bcryptCost int,
	logger *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo:   userRepo,
		walletRepo: walletRepo,
		providers:  providers,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	email := normalizeEmail(request.Email)
	phone := strings.TrimSpace(request.Phone)
	userType := db_models.UserType(request.UserType)
	if !userType.Valid() {
		return nil, fmt.Errorf("userType must be buyer, seller or both: %w", utils.ErrValidation)
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(err)
	}
	if existing != nil {
		return nil, utils.ErrUserAlreadyExists
	}

	existing, err = a.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, dbError(err)
	}
	if existing != nil {
		return nil, utils.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &db_models.User{
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		Email:        email,
		Phone:        &phone,
		PasswordHash: hashedPassword,
		UserType:     userType,
		KYCStatus:    db_models.KYCPending,
		AuthProvider: db_models.AuthProviderPassword,
		IsActive:     true,
	}
	if err := a.createUser(ctx, user); err != nil {
		return nil, err
	}

	a.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("user_type", string(user.UserType)))

	return a.issue(user)
}

// Login checks the active flag before the password so a deactivated account
// is reported as such even with a wrong password.
func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, dbError(err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDeactivated
	}
	if !user.HasPassword() {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return a.issue(user)
}

func (a *AccountService) SocialAuth(ctx context.Context, request request_models.SocialAuthRequest) (*response_models.AuthResponse, error) {
	provider, ok := a.providers.Lookup(request.Provider)
	if !ok {
		return nil, utils.ErrUnknownProvider
	}

	profile, err := provider.ExchangeCodeForProfile(ctx, request.Code)
	if err != nil {
		a.logger.Warn("social auth exchange failed",
			zap.String("provider", provider.Name()),
			zap.Error(err))
		return nil, &utils.ProviderError{Provider: provider.Name(), Err: err}
	}
	if strings.TrimSpace(profile.Email) == "" {
		return nil, utils.ErrMissingEmail
	}

	email := normalizeEmail(profile.Email)
	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, dbError(err)
	}

	if user == nil {
		user = &db_models.User{
			FirstName:    profile.GivenName(),
			LastName:     profile.FamilyName(),
			Email:        email,
			UserType:     db_models.UserTypeBuyer,
			KYCStatus:    db_models.KYCPending,
			AuthProvider: provider.Name(),
			IsActive:     true,
		}
		if profile.AvatarURL != "" {
			avatar := profile.AvatarURL
			user.ProfileImageURL = &avatar
		}
		err := a.createUser(ctx, user)
		switch {
		case errors.Is(err, utils.ErrUserAlreadyExists):
			// a concurrent login for the same email created the account first
			if user, err = a.userRepo.FindByEmail(ctx, email); err != nil {
				return nil, dbError(err)
			}
			if user == nil {
				return nil, utils.ErrUserAlreadyExists
			}
		case err != nil:
			return nil, err
		default:
			a.logger.Info("user created from social login",
				zap.String("user_id", user.ID.String()),
				zap.String("provider", provider.Name()))
		}
	}
	if !user.IsActive {
		return nil, utils.ErrAccountDeactivated
	}

	return a.issue(user)
}

func (a *AccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := a.walletRepo.Balance(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewUserResponse(user)
	resp.WalletBalance = &balance.Total
	resp.EscrowBalance = &balance.Escrow
	return &resp, nil
}

func (a *AccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, request request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.FirstName != nil {
		fields["first_name"] = strings.TrimSpace(*request.FirstName)
	}
	if request.LastName != nil {
		fields["last_name"] = strings.TrimSpace(*request.LastName)
	}
	if request.UserType != nil {
		userType := db_models.UserType(*request.UserType)
		if !userType.Valid() {
			return nil, fmt.Errorf("userType must be buyer, seller or both: %w", utils.ErrValidation)
		}
		fields["user_type"] = userType
	}
	if request.ProfileImageURL != nil {
		fields["profile_image_url"] = strings.TrimSpace(*request.ProfileImageURL)
	}
	if request.Phone != nil {
		phone := strings.TrimSpace(*request.Phone)
		if phone == "" {
			return nil, fmt.Errorf("phone cannot be empty: %w", utils.ErrValidation)
		}
		owner, err := a.userRepo.FindByPhone(ctx, phone)
		if err != nil {
			return nil, dbError(err)
		}
		if owner != nil && owner.ID != user.ID {
			return nil, utils.ErrUserAlreadyExists
		}
		fields["phone"] = phone
	}

	if len(fields) > 0 {
		if err := a.userRepo.Update(ctx, user, fields); err != nil {
			return nil, dbError(err)
		}
	}

	return a.GetProfile(ctx, userID)
}

// SubmitKYC moves a pending or rejected verification to submitted. Review of
// the submission happens outside the API.
func (a *AccountService) SubmitKYC(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.KYCStatus {
	case db_models.KYCPending, db_models.KYCRejected:
	default:
		return nil, fmt.Errorf("KYC is already %s: %w", user.KYCStatus, utils.ErrValidation)
	}

	if err := a.userRepo.Update(ctx, user, map[string]interface{}{"kyc_status": db_models.KYCSubmitted}); err != nil {
		return nil, dbError(err)
	}

	return a.GetProfile(ctx, userID)
}

func (a *AccountService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := a.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := a.userRepo.Update(ctx, user, map[string]interface{}{"is_active": false}); err != nil {
		return dbError(err)
	}

	a.logger.Info("user deactivated", zap.String("user_id", userID.String()))
	return nil
}

func (a *AccountService) findUser(ctx context.Context, userID uuid.UUID) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (a *AccountService) issue(user *db_models.User) (*response_models.AuthResponse, error) {
	token, err := a.tokens.CreateToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &response_models.AuthResponse{
		Token: token,
		User:  response_models.NewUserResponse(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// dbError tags repository failures so HandleServiceError logs them as 500s.
// createUser relies on the unique email and phone indexes to catch a
// registration racing past the existence checks.
func (a *AccountService) createUser(ctx context.Context, user *db_models.User) error {
	err := a.userRepo.Create(ctx, user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return utils.ErrUserAlreadyExists
	}
	if err != nil {
		return dbError(err)
	}
	return nil
}

func dbError(err error) error {
	return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
}
