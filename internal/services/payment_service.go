package services

import (
	"context"
	"fmt"
	"strings"

	"gidimart/internal/events"
	"gidimart/internal/infra"
	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/internal/models/response_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PaymentServiceInterface interface {
	ProcessPayment(ctx context.Context, payerID uuid.UUID, request request_models.ProcessPaymentRequest) (*response_models.PaymentResult, error)
	ListPayments(ctx context.Context, userID, orderID uuid.UUID) ([]response_models.PaymentResponse, error)
}

// PaymentService simulates a processor that always captures successfully.
type PaymentService struct {
	db          *gorm.DB
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	walletRepo  repositories.WalletRepository
	publisher   events.Publisher
	logger      *zap.Logger
	newID       func() uuid.UUID
}

func NewPaymentService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	walletRepo repositories.WalletRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) PaymentServiceInterface {
	return &PaymentService{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		walletRepo:  walletRepo,
		publisher:   publisher,
		logger:      logger,
		newID:       uuid.New,
	}
}

// ProcessPayment captures one payment against an order. Full-payment orders
// must be settled in one go; installment orders accept any part of what is
// still outstanding.
func (p *PaymentService) ProcessPayment(ctx context.Context, payerID uuid.UUID, request request_models.ProcessPaymentRequest) (*response_models.PaymentResult, error) {
	orderID, err := uuid.Parse(request.OrderID)
	if err != nil {
		return nil, utils.ErrOrderNotFound
	}
	method := db_models.PaymentMethod(request.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("paymentMethod must be card, bank_transfer, ussd or wallet: %w", utils.ErrValidation)
	}
	if request.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", utils.ErrValidation)
	}

	var (
		order   *db_models.Order
		payment *db_models.Payment
	)
	err = infra.WithTransaction(ctx, p.db, func(tx *gorm.DB) error {
		var err error
		order, err = p.orderRepo.WithTx(tx).FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return dbError(err)
		}
		if order == nil || order.BuyerID != payerID {
			return utils.ErrOrderNotFound
		}

		if err := checkPayable(order, request.Amount); err != nil {
			return err
		}

		if method == db_models.PaymentMethodWallet {
			if err := p.walletRepo.WithTx(tx).LockOwner(ctx, payerID); err != nil {
				return dbError(err)
			}
			balance, err := p.walletRepo.WithTx(tx).Balance(ctx, payerID)
			if err != nil {
				return dbError(err)
			}
			if balance.Available() < request.Amount {
				return fmt.Errorf("available wallet balance is %d: %w", balance.Available(), utils.ErrInsufficientFunds)
			}
		}

		count, err := p.paymentRepo.WithTx(tx).CountByOrder(ctx, orderID)
		if err != nil {
			return dbError(err)
		}

		payment = &db_models.Payment{
			OrderID:           orderID,
			PayerID:           payerID,
			Amount:            request.Amount,
			Method:            method,
			TransactionID:     p.transactionID(),
			Reference:         p.reference(orderID),
			InstallmentNumber: int(count) + 1,
			Status:            db_models.PaymentCompleted,
		}
		if err := p.paymentRepo.WithTx(tx).Create(ctx, payment); err != nil {
			return dbError(err)
		}

		entries := []*db_models.WalletTransaction{escrowHoldEntry(order, request.Amount)}
		// escrow on a delivered order has already been released to the seller
		if order.Status == db_models.OrderStatusDelivered {
			entries = append(entries, escrowReleaseEntry(order, request.Amount))
		}
		if method == db_models.PaymentMethodWallet {
			entries = append(entries, walletDebitEntry(order, request.Amount))
		}
		if err := p.walletRepo.WithTx(tx).Append(ctx, entries...); err != nil {
			return dbError(err)
		}

		paid := order.AmountPaid + request.Amount
		paymentStatus := db_models.PaymentStatusPartiallyPaid
		if paid >= order.TotalAmount {
			paymentStatus = db_models.PaymentStatusPaid
		}
		fields := map[string]interface{}{
			"amount_paid":    paid,
			"payment_status": paymentStatus,
		}
		if order.Status == db_models.OrderStatusPending {
			fields["status"] = db_models.OrderStatusConfirmed
		}
		if err := p.orderRepo.WithTx(tx).Update(ctx, order, fields); err != nil {
			return dbError(err)
		}
		order.AmountPaid = paid
		order.PaymentStatus = paymentStatus
		if order.Status == db_models.OrderStatusPending {
			order.Status = db_models.OrderStatusConfirmed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("payment captured",
		zap.String("order_id", orderID.String()),
		zap.String("transaction_id", payment.TransactionID),
		zap.String("method", string(method)),
		zap.Int64("amount", payment.Amount))

	ev, err := events.New(events.PaymentCompleted, payerID, &orderID, map[string]any{
		"transactionId":     payment.TransactionID,
		"reference":         payment.Reference,
		"amount":            payment.Amount,
		"method":            payment.Method,
		"installmentNumber": payment.InstallmentNumber,
		"paymentStatus":     order.PaymentStatus,
	})
	if err == nil {
		p.publisher.Publish(ctx, ev)
	}

	return &response_models.PaymentResult{
		TransactionID: payment.TransactionID,
		Reference:     payment.Reference,
		Order:         response_models.NewOrderResponse(order),
	}, nil
}

func (p *PaymentService) ListPayments(ctx context.Context, userID, orderID uuid.UUID) ([]response_models.PaymentResponse, error) {
	order, err := p.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, dbError(err)
	}
	if order == nil || !order.IsParty(userID) {
		return nil, utils.ErrOrderNotFound
	}

	payments, err := p.paymentRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewPaymentResponses(payments), nil
}

// checkPayable accepts payments before shipping. Installment orders may ship
// part paid, so they keep accepting installments until the balance is cleared.
func checkPayable(order *db_models.Order, amount int64) error {
	switch order.Status {
	case db_models.OrderStatusPending, db_models.OrderStatusConfirmed:
	case db_models.OrderStatusInTransit, db_models.OrderStatusDelivered:
		if order.PaymentType != db_models.PaymentTypeInstallment {
			return fmt.Errorf("order is %s: %w", order.Status, utils.ErrOrderNotPayable)
		}
	default:
		return fmt.Errorf("order is %s: %w", order.Status, utils.ErrOrderNotPayable)
	}

	outstanding := order.Outstanding()
	if outstanding == 0 {
		return fmt.Errorf("order is already paid: %w", utils.ErrOrderNotPayable)
	}

	if order.PaymentType == db_models.PaymentTypeInstallment {
		if amount > outstanding {
			return fmt.Errorf("amount exceeds the outstanding %d: %w", outstanding, utils.ErrValidation)
		}
		return nil
	}
	if amount != outstanding {
		return fmt.Errorf("amount must equal the outstanding %d: %w", outstanding, utils.ErrValidation)
	}
	return nil
}

func (p *PaymentService) transactionID() string {
	return "TXN_" + hexID(p.newID())
}

func (p *PaymentService) reference(orderID uuid.UUID) string {
	return "REF_" + hexID(orderID)[:8] + "_" + hexID(p.newID())[:12]
}

func hexID(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")
}
