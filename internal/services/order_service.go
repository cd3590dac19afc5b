package services

import (
	"context"
	"fmt"
	"math"

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

const (
	minInstallments = 2
	maxInstallments = 24
)

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, buyerID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error)
	ListOrders(ctx context.Context, userID uuid.UUID, query request_models.ListOrdersQuery) ([]response_models.OrderResponse, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error)
	UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, request request_models.UpdateOrderStatusRequest) (*response_models.OrderResponse, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error)
}

type OrderService struct {
	db          *gorm.DB
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	walletRepo  repositories.WalletRepository
	publisher   events.Publisher
	logger      *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	walletRepo repositories.WalletRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		walletRepo:  walletRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateOrder snapshots the product price onto the order. Escrow is marked
// held from the start; money only enters escrow when a payment is captured.
func (o *OrderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, request request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	productID, err := uuid.Parse(request.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}
	if request.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1: %w", utils.ErrValidation)
	}

	paymentType := db_models.PaymentTypeFull
	if request.PaymentType != "" {
		paymentType = db_models.PaymentType(request.PaymentType)
	}
	plan := 1
	switch paymentType {
	case db_models.PaymentTypeFull:
	case db_models.PaymentTypeInstallment:
		plan = request.InstallmentPlan
		if plan < minInstallments || plan > maxInstallments {
			return nil, fmt.Errorf("installmentPlan must be between %d and %d: %w", minInstallments, maxInstallments, utils.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("paymentType must be full or installment: %w", utils.ErrValidation)
	}

	var order *db_models.Order
	err = infra.WithTransaction(ctx, o.db, func(tx *gorm.DB) error {
		product, err := o.productRepo.WithTx(tx).FindByID(ctx, productID)
		if err != nil {
			return dbError(err)
		}
		if product == nil {
			return utils.ErrProductNotFound
		}
		if !product.IsActive {
			return utils.ErrProductInactive
		}
		if product.SellerID == buyerID {
			return fmt.Errorf("you cannot order your own product: %w", utils.ErrValidation)
		}
		if paymentType == db_models.PaymentTypeInstallment && !product.InstallmentEnabled {
			return fmt.Errorf("installments are not available for this product: %w", utils.ErrValidation)
		}
		if product.Price > math.MaxInt64/int64(request.Quantity) {
			return fmt.Errorf("order total is too large: %w", utils.ErrValidation)
		}

		order = &db_models.Order{
			BuyerID:         buyerID,
			SellerID:        product.SellerID,
			ProductID:       product.ID,
			Quantity:        request.Quantity,
			UnitPrice:       product.Price,
			TotalAmount:     product.Price * int64(request.Quantity),
			Status:          db_models.OrderStatusPending,
			EscrowStatus:    db_models.EscrowHeld,
			PaymentType:     paymentType,
			InstallmentPlan: plan,
			PaymentStatus:   db_models.PaymentStatusUnpaid,
		}
		if err := o.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			return dbError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.Int64("total_amount", order.TotalAmount))
	o.publish(ctx, events.OrderCreated, buyerID, order, map[string]any{
		"productId":   order.ProductID,
		"sellerId":    order.SellerID,
		"quantity":    order.Quantity,
		"totalAmount": order.TotalAmount,
		"paymentType": order.PaymentType,
	})

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

func (o *OrderService) ListOrders(ctx context.Context, userID uuid.UUID, query request_models.ListOrdersQuery) ([]response_models.OrderResponse, error) {
	role := repositories.OrderRoleBuyer
	switch query.Type {
	case "", string(repositories.OrderRoleBuyer):
	case string(repositories.OrderRoleSeller):
		role = repositories.OrderRoleSeller
	default:
		return nil, fmt.Errorf("type must be buyer or seller: %w", utils.ErrValidation)
	}

	if query.Status != "" && !db_models.OrderStatus(query.Status).Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", query.Status, utils.ErrValidation)
	}

	rows, err := o.orderRepo.ListForUser(ctx, userID, role, query.Status)
	if err != nil {
		return nil, dbError(err)
	}
	return response_models.NewOrderRowResponses(rows), nil
}

func (o *OrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, dbError(err)
	}
	if order == nil || !order.IsParty(userID) {
		return nil, utils.ErrOrderNotFound
	}

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

// UpdateStatus drives fulfilment. Confirmation only happens through payment
// and cancellation goes through CancelOrder.
func (o *OrderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, request request_models.UpdateOrderStatusRequest) (*response_models.OrderResponse, error) {
	target := db_models.OrderStatus(request.Status)
	if !target.Valid() {
		return nil, fmt.Errorf("unknown order status %q: %w", request.Status, utils.ErrValidation)
	}
	if target == db_models.OrderStatusCancelled {
		return o.CancelOrder(ctx, userID, orderID)
	}

	var (
		order *db_models.Order
		from  db_models.OrderStatus
	)
	err := infra.WithTransaction(ctx, o.db, func(tx *gorm.DB) error {
		var err error
		order, err = o.lockOrder(ctx, tx, userID, orderID)
		if err != nil {
			return err
		}
		from = order.Status

		if !db_models.CanTransition(from, target) {
			return fmt.Errorf("cannot move order from %s to %s: %w", from, target, utils.ErrInvalidTransition)
		}

		fields := map[string]interface{}{"status": target}
		switch target {
		case db_models.OrderStatusConfirmed:
			return fmt.Errorf("orders are confirmed by payment: %w", utils.ErrInvalidTransition)
		case db_models.OrderStatusInTransit:
			if order.SellerID != userID {
				return utils.ErrForbidden
			}
			if !readyToShip(order) {
				return fmt.Errorf("order must be paid before it ships: %w", utils.ErrInvalidTransition)
			}
		case db_models.OrderStatusDelivered:
			fields["escrow_status"] = db_models.EscrowReleased
			if order.AmountPaid > 0 {
				if err := o.walletRepo.WithTx(tx).Append(ctx, escrowReleaseEntry(order, order.AmountPaid)); err != nil {
					return dbError(err)
				}
			}
		}

		if err := o.orderRepo.WithTx(tx).Update(ctx, order, fields); err != nil {
			return dbError(err)
		}
		order.Status = target
		if target == db_models.OrderStatusDelivered {
			order.EscrowStatus = db_models.EscrowReleased
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("order status changed",
		zap.String("order_id", orderID.String()),
		zap.String("from", string(from)),
		zap.String("to", string(target)))
	o.publish(ctx, events.OrderStatusChanged, userID, order, map[string]any{
		"from": from,
		"to":   target,
	})

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

// CancelOrder refunds whatever was captured: the seller's escrow shrinks by
// the paid amount and the buyer's wallet is credited with it.
func (o *OrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	var (
		order    *db_models.Order
		refunded int64
	)
	err := infra.WithTransaction(ctx, o.db, func(tx *gorm.DB) error {
		var err error
		order, err = o.lockOrder(ctx, tx, userID, orderID)
		if err != nil {
			return err
		}
		if !db_models.CanTransition(order.Status, db_models.OrderStatusCancelled) {
			return fmt.Errorf("cannot cancel a %s order: %w", order.Status, utils.ErrInvalidTransition)
		}

		fields := map[string]interface{}{
			"status":        db_models.OrderStatusCancelled,
			"escrow_status": db_models.EscrowRefunded,
		}
		if order.AmountPaid > 0 {
			refunded = order.AmountPaid
			fields["payment_status"] = db_models.PaymentStatusRefunded
			if err := o.walletRepo.WithTx(tx).Append(ctx, refundEntries(order, refunded)...); err != nil {
				return dbError(err)
			}
		}

		if err := o.orderRepo.WithTx(tx).Update(ctx, order, fields); err != nil {
			return dbError(err)
		}
		order.Status = db_models.OrderStatusCancelled
		order.EscrowStatus = db_models.EscrowRefunded
		if refunded > 0 {
			order.PaymentStatus = db_models.PaymentStatusRefunded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("order cancelled",
		zap.String("order_id", orderID.String()),
		zap.Int64("refunded", refunded))
	o.publish(ctx, events.OrderCancelled, userID, order, map[string]any{
		"refunded": refunded,
	})

	resp := response_models.NewOrderResponse(order)
	return &resp, nil
}

// lockOrder loads the order for update and hides it from anyone who is not
// the buyer or the seller.
func (o *OrderService) lockOrder(ctx context.Context, tx *gorm.DB, userID, orderID uuid.UUID) (*db_models.Order, error) {
	order, err := o.orderRepo.WithTx(tx).FindByIDForUpdate(ctx, orderID)
	if err != nil {
		return nil, dbError(err)
	}
	if order == nil || !order.IsParty(userID) {
		return nil, utils.ErrOrderNotFound
	}
	return order, nil
}

func (o *OrderService) publish(ctx context.Context, t events.Type, userID uuid.UUID, order *db_models.Order, payload any) {
	orderID := order.ID
	ev, err := events.New(t, userID, &orderID, payload)
	if err != nil {
		o.logger.Warn("build event", zap.String("type", string(t)), zap.Error(err))
		return
	}
	o.publisher.Publish(ctx, ev)
}

func readyToShip(order *db_models.Order) bool {
	switch order.PaymentStatus {
	case db_models.PaymentStatusPaid:
		return true
	case db_models.PaymentStatusPartiallyPaid:
		return order.PaymentType == db_models.PaymentTypeInstallment
	}
	return false
}
