package repositories

import (
	"context"
	"errors"

	"gidimart/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.User, error)
	Update(ctx context.Context, user *db_models.User, fields map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (u *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (u *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return u.first(ctx, "id = ?", id)
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	return u.first(ctx, "email = ?", email)
}

func (u *userRepository) FindByPhone(ctx context.Context, phone string) (*db_models.User, error) {
	return u.first(ctx, "phone = ?", phone)
}

func (u *userRepository) Update(ctx context.Context, user *db_models.User, fields map[string]interface{}) error {
	return u.db.WithContext(ctx).Model(user).Updates(fields).Error
}

// first returns nil, nil when no row matches.
func (u *userRepository) first(ctx context.Context, query string, args ...interface{}) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).Where(query, args...).First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
