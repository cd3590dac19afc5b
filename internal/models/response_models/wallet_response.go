package response_models

import (
	"gidimart/internal/models/db_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
)

type PaymentResult struct {
	TransactionID string        `json:"transactionId"`
	Reference     string        `json:"reference"`
	Order         OrderResponse `json:"order"`
}

type PaymentResponse struct {
	ID                string `json:"id"`
	OrderID           string `json:"orderId"`
	PayerID           string `json:"payerId"`
	Amount            int64  `json:"amount"`
	Method            string `json:"paymentMethod"`
	TransactionID     string `json:"transactionId"`
	Reference         string `json:"reference"`
	InstallmentNumber int    `json:"installmentNumber"`
	Status            string `json:"status"`
	CreatedAt         string `json:"createdAt"`
}

func NewPaymentResponses(payments []db_models.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			ID:                p.ID.String(),
			OrderID:           p.OrderID.String(),
			PayerID:           p.PayerID.String(),
			Amount:            p.Amount,
			Method:            string(p.Method),
			TransactionID:     p.TransactionID,
			Reference:         p.Reference,
			InstallmentNumber: p.InstallmentNumber,
			Status:            p.Status,
			CreatedAt:         utils.FormatRFC3339(p.CreatedAt),
		})
	}
	return out
}

type BalanceResponse struct {
	TotalBalance     int64 `json:"totalBalance"`
	EscrowBalance    int64 `json:"escrowBalance"`
	AvailableBalance int64 `json:"availableBalance"`
}

func NewBalanceResponse(b repositories.Balance) BalanceResponse {
	return BalanceResponse{
		TotalBalance:     b.Total,
		EscrowBalance:    b.Escrow,
		AvailableBalance: b.Available(),
	}
}

type WalletTransactionResponse struct {
	ID           string  `json:"id"`
	OrderID      *string `json:"orderId"`
	Amount       int64   `json:"amount"`
	EscrowAmount int64   `json:"escrowAmount"`
	Category     string  `json:"type"`
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	CreatedAt    string  `json:"createdAt"`
}

func NewWalletTransactionResponse(t *db_models.WalletTransaction) WalletTransactionResponse {
	resp := WalletTransactionResponse{
		ID:           t.ID.String(),
		Amount:       t.Amount,
		EscrowAmount: t.EscrowAmount,
		Category:     string(t.Category),
		Status:       string(t.Status),
		Description:  t.Description,
		CreatedAt:    utils.FormatRFC3339(t.CreatedAt),
	}
	if t.OrderID != nil {
		id := t.OrderID.String()
		resp.OrderID = &id
	}
	return resp
}

func NewWalletTransactionResponses(entries []db_models.WalletTransaction) []WalletTransactionResponse {
	out := make([]WalletTransactionResponse, 0, len(entries))
	for i := range entries {
		out = append(out, NewWalletTransactionResponse(&entries[i]))
	}
	return out
}
