package services

import (
	"fmt"

	"gidimart/internal/models/db_models"
	"github.com/google/uuid"
)

// Ledger lines written by order and payment operations. A seller's escrow
// grows on capture and shrinks on release or refund; a buyer is only debited
// for wallet payments.

func escrowHoldEntry(order *db_models.Order, amount int64) *db_models.WalletTransaction {
	return ledgerEntry(order.SellerID, order, amount, amount, db_models.WalletEscrowHold,
		fmt.Sprintf("Escrow hold for order %s", shortID(order.ID)))
}

func escrowReleaseEntry(order *db_models.Order, held int64) *db_models.WalletTransaction {
	return ledgerEntry(order.SellerID, order, 0, -held, db_models.WalletEscrowRelease,
		fmt.Sprintf("Escrow released for order %s", shortID(order.ID)))
}

func walletDebitEntry(order *db_models.Order, amount int64) *db_models.WalletTransaction {
	category := db_models.WalletPurchase
	if order.PaymentType == db_models.PaymentTypeInstallment {
		category = db_models.WalletInstallmentPayment
	}
	return ledgerEntry(order.BuyerID, order, -amount, 0, category,
		fmt.Sprintf("Payment for order %s", shortID(order.ID)))
}

func refundEntries(order *db_models.Order, paid int64) []*db_models.WalletTransaction {
	desc := fmt.Sprintf("Refund for order %s", shortID(order.ID))
	return []*db_models.WalletTransaction{
		ledgerEntry(order.SellerID, order, -paid, -paid, db_models.WalletRefund, desc),
		ledgerEntry(order.BuyerID, order, paid, 0, db_models.WalletRefund, desc),
	}
}

func ledgerEntry(userID uuid.UUID, order *db_models.Order, amount, escrow int64, category db_models.WalletCategory, desc string) *db_models.WalletTransaction {
	entry := &db_models.WalletTransaction{
		UserID:       userID,
		Amount:       amount,
		EscrowAmount: escrow,
		Category:     category,
		Status:       db_models.WalletTxnCompleted,
		Description:  desc,
	}
	if order != nil {
		orderID := order.ID
		entry.OrderID = &orderID
	}
	return entry
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
