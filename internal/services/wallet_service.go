package services

import (
	"context"
	"fmt"

	"gidimart/internal/events"
	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/internal/models/response_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WalletServiceInterface interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*response_models.BalanceResponse, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, pageStr, limitStr string) ([]response_models.WalletTransactionResponse, error)
	TopUp(ctx context.Context, userID uuid.UUID, request request_models.TopUpRequest) (*response_models.WalletTransactionResponse, error)
}

// WalletService is a read view over the ledger plus simulated top-ups.
// Balances are never stored; they are summed from completed entries.
type WalletService struct {
	walletRepo repositories.WalletRepository
	publisher  events.Publisher
	logger     *zap.Logger
}

func NewWalletService(walletRepo repositories.WalletRepository, publisher events.Publisher, logger *zap.Logger) WalletServiceInterface {
	return &WalletService{
		walletRepo: walletRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (w *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (*response_models.BalanceResponse, error) {
	balance, err := w.walletRepo.Balance(ctx, userID)
	if err != nil {
		return nil, dbError(err)
	}
	resp := response_models.NewBalanceResponse(balance)
	return &resp, nil
}

func (w *WalletService) ListTransactions(ctx context.Context, userID uuid.UUID, pageStr, limitStr string) ([]response_models.WalletTransactionResponse, error) {
	page, limit, err := utils.ParsePagination(pageStr, limitStr)
	if err != nil {
		return nil, err
	}

	entries, err := w.walletRepo.List(ctx, userID, page, limit)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewWalletTransactionResponses(entries), nil
}

func (w *WalletService) TopUp(ctx context.Context, userID uuid.UUID, request request_models.TopUpRequest) (*response_models.WalletTransactionResponse, error) {
	if request.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", utils.ErrValidation)
	}
	method := db_models.PaymentMethod(request.Method)
	if !method.Valid() || method == db_models.PaymentMethodWallet {
		return nil, fmt.Errorf("method must be card, bank_transfer or ussd: %w", utils.ErrValidation)
	}

	entry := ledgerEntry(userID, nil, request.Amount, 0, db_models.WalletTopUp,
		fmt.Sprintf("Wallet top-up via %s", method))
	if err := w.walletRepo.Append(ctx, entry); err != nil {
		return nil, dbError(err)
	}

	w.logger.Info("wallet topped up",
		zap.String("user_id", userID.String()),
		zap.Int64("amount", request.Amount))

	ev, err := events.New(events.WalletToppedUp, userID, nil, map[string]any{
		"amount": request.Amount,
		"method": method,
	})
	if err == nil {
		w.publisher.Publish(ctx, ev)
	}

	resp := response_models.NewWalletTransactionResponse(entry)
	return &resp, nil
}
