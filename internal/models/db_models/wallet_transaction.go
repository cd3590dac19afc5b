package db_models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WalletCategory string

const (
	WalletInstallmentPayment WalletCategory = "installment_payment"
	WalletPurchase           WalletCategory = "purchase"
	WalletEscrowHold         WalletCategory = "escrow_hold"
	WalletEscrowRelease      WalletCategory = "escrow_release"
	WalletRefund             WalletCategory = "refund"
	WalletTopUp              WalletCategory = "top_up"
)

type WalletTxnStatus string

const (
	WalletTxnCompleted WalletTxnStatus = "completed"
	WalletTxnPending   WalletTxnStatus = "pending"
)

var ErrLedgerEntryImmutable = errors.New("wallet transactions are append-only")

// WalletTransaction is one ledger line. Amount moves the total balance,
// EscrowAmount moves the part of it that is held in escrow.
type WalletTransaction struct {
	BaseModel
	UserID       uuid.UUID       `gorm:"type:uuid;index;not null"`
	OrderID      *uuid.UUID      `gorm:"type:uuid;index"`
	Amount       int64           `gorm:"not null"`
	EscrowAmount int64           `gorm:"not null;default:0"`
	Category     WalletCategory  `gorm:"size:32;not null"`
	Status       WalletTxnStatus `gorm:"size:16;not null"`
	Description  string          `gorm:"size:255"`
}

func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}

func (w *WalletTransaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}

func (w *WalletTransaction) BeforeDelete(tx *gorm.DB) error {
	return ErrLedgerEntryImmutable
}
