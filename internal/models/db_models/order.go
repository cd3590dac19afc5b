package db_models

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusConfirmed: true, OrderStatusCancelled: true},
	OrderStatusConfirmed: {OrderStatusInTransit: true, OrderStatusCancelled: true},
	OrderStatusInTransit: {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

type EscrowStatus string

const (
	EscrowHeld     EscrowStatus = "held"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

type PaymentType string

const (
	PaymentTypeFull        PaymentType = "full"
	PaymentTypeInstallment PaymentType = "installment"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "unpaid"
	PaymentStatusPartiallyPaid PaymentStatus = "partially_paid"
	PaymentStatusPaid          PaymentStatus = "paid"
	PaymentStatusRefunded      PaymentStatus = "refunded"
)

type Order struct {
	BaseModel
	BuyerID         uuid.UUID     `gorm:"type:uuid;index;not null"`
	SellerID        uuid.UUID     `gorm:"type:uuid;index;not null"`
	ProductID       uuid.UUID     `gorm:"type:uuid;index;not null"`
	Quantity        int           `gorm:"not null"`
	UnitPrice       int64         `gorm:"not null;<-:create"`
	TotalAmount     int64         `gorm:"not null;<-:create"` // snapshot of UnitPrice*Quantity
	AmountPaid      int64         `gorm:"not null;default:0"`
	Status          OrderStatus   `gorm:"size:16;not null;index"`
	EscrowStatus    EscrowStatus  `gorm:"size:16;not null"`
	PaymentType     PaymentType   `gorm:"size:16;not null"`
	InstallmentPlan int           `gorm:"not null;default:1"` // number of installments
	PaymentStatus   PaymentStatus `gorm:"size:16;not null"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) Outstanding() int64 {
	if o.AmountPaid >= o.TotalAmount {
		return 0
	}
	return o.TotalAmount - o.AmountPaid
}

func (o *Order) IsParty(userID uuid.UUID) bool {
	return o.BuyerID == userID || o.SellerID == userID
}
