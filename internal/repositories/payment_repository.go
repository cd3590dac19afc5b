package repositories

import (
	"context"

	"gidimart/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	WithTx(tx *gorm.DB) PaymentRepository
	Create(ctx context.Context, payment *db_models.Payment) error
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]db_models.Payment, error)
	CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &paymentRepository{db: tx}
}

func (p *paymentRepository) Create(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Create(payment).Error
}

// ListByOrder returns payments oldest first so installment numbers read in order.
func (p *paymentRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]db_models.Payment, error) {
	payments := []db_models.Payment{}
	err := p.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("installment_number ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (p *paymentRepository) CountByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}
