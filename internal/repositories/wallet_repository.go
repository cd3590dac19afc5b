package repositories

import (
	"context"

	"gidimart/internal/models/db_models"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Balance is derived from completed ledger lines. Available is what the
// user can spend: the total minus what is held in escrow.
type Balance struct {
	Total  int64 `gorm:"column:total"`
	Escrow int64 `gorm:"column:escrow"`
}

func (b Balance) Available() int64 {
	return b.Total - b.Escrow
}

type WalletRepository interface {
	WithTx(tx *gorm.DB) WalletRepository
	LockOwner(ctx context.Context, userID uuid.UUID) error
	Append(ctx context.Context, entries ...*db_models.WalletTransaction) error
	Balance(ctx context.Context, userID uuid.UUID) (Balance, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.WalletTransaction, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (w *walletRepository) WithTx(tx *gorm.DB) WalletRepository {
	return &walletRepository{db: tx}
}

// LockOwner serialises balance checks for one user by locking their users row
// until the surrounding transaction ends. SQLite ignores the locking clause.
func (w *walletRepository) LockOwner(ctx context.Context, userID uuid.UUID) error {
	db := w.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var owner db_models.User
	return db.Select("id").Where("id = ?", userID).Take(&owner).Error
}

func (w *walletRepository) Append(ctx context.Context, entries ...*db_models.WalletTransaction) error {
	if len(entries) == 0 {
		return nil
	}
	return w.db.WithContext(ctx).Create(entries).Error
}

func (w *walletRepository) Balance(ctx context.Context, userID uuid.UUID) (Balance, error) {
	var balance Balance
	err := w.db.WithContext(ctx).
		Model(&db_models.WalletTransaction{}).
		Select("COALESCE(SUM(amount), 0) AS total, COALESCE(SUM(escrow_amount), 0) AS escrow").
		Where("user_id = ? AND status = ?", userID, db_models.WalletTxnCompleted).
		Scan(&balance).Error
	return balance, err
}

func (w *walletRepository) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]db_models.WalletTransaction, error) {
	entries := []db_models.WalletTransaction{}
	err := w.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
