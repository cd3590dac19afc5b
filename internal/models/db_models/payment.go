package db_models

import "github.com/google/uuid"

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUSSD         PaymentMethod = "ussd"
	PaymentMethodWallet       PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodUSSD, PaymentMethodWallet:
		return true
	}
	return false
}

const PaymentCompleted = "completed"

type Payment struct {
	BaseModel
	OrderID           uuid.UUID     `gorm:"type:uuid;index;not null"`
	PayerID           uuid.UUID     `gorm:"type:uuid;index;not null"`
	Amount            int64         `gorm:"not null"`
	Method            PaymentMethod `gorm:"size:32;not null"`
	TransactionID     string        `gorm:"size:64;uniqueIndex;not null"`
	Reference         string        `gorm:"size:64;uniqueIndex;not null"`
	InstallmentNumber int           `gorm:"not null;default:1"`
	Status            string        `gorm:"size:16;not null"`
}

func (Payment) TableName() string {
	return "payments"
}
