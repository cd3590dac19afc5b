package services

import (
	"context"
	"testing"

	"gidimart/internal/events"
	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateSnapshotsTotal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	product := env.seedProduct(t, seller.ID, 5000, false)

	order, err := env.orderService.CreateOrder(ctx, buyer.ID, request_models.CreateOrderRequest{
		ProductID: product.ID.String(),
		Quantity:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), order.TotalAmount)
	assert.Equal(t, "pending", order.Status)
	assert.Equal(t, "held", order.EscrowStatus)
	assert.Equal(t, "unpaid", order.PaymentStatus)
	assert.Equal(t, "full", order.PaymentType)
	assert.Equal(t, 1, order.InstallmentPlan)

	price := int64(9999)
	_, err = env.productService.UpdateProduct(ctx, seller.ID, product.ID, request_models.UpdateProductRequest{Price: &price})
	require.NoError(t, err)

	reloaded, err := env.orderService.GetOrder(ctx, buyer.ID, uuid.MustParse(order.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(10000), reloaded.TotalAmount)
	assert.Equal(t, int64(5000), reloaded.UnitPrice)

	assert.Equal(t, []events.Type{events.OrderCreated}, env.publisher.types())
}

func TestOrderService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	product := env.seedProduct(t, seller.ID, 5000, false)
	inactive := env.seedProduct(t, seller.ID, 5000, false)
	require.NoError(t, env.productService.DeactivateProduct(ctx, seller.ID, inactive.ID))

	tests := []struct {
		name    string
		buyer   uuid.UUID
		request request_models.CreateOrderRequest
		wantErr error
	}{
		{"missing product", buyer.ID, request_models.CreateOrderRequest{ProductID: uuid.NewString(), Quantity: 1}, utils.ErrProductNotFound},
		{"malformed product id", buyer.ID, request_models.CreateOrderRequest{ProductID: "P1", Quantity: 1}, utils.ErrProductNotFound},
		{"inactive product", buyer.ID, request_models.CreateOrderRequest{ProductID: inactive.ID.String(), Quantity: 1}, utils.ErrProductInactive},
		{"zero quantity", buyer.ID, request_models.CreateOrderRequest{ProductID: product.ID.String(), Quantity: 0}, utils.ErrValidation},
		{"own product", seller.ID, request_models.CreateOrderRequest{ProductID: product.ID.String(), Quantity: 1}, utils.ErrValidation},
		{"unknown payment type", buyer.ID, request_models.CreateOrderRequest{ProductID: product.ID.String(), Quantity: 1, PaymentType: "layaway"}, utils.ErrValidation},
		{"installments disabled", buyer.ID, request_models.CreateOrderRequest{ProductID: product.ID.String(), Quantity: 1, PaymentType: "installment", InstallmentPlan: 3}, utils.ErrValidation},
		{"plan too short", buyer.ID, request_models.CreateOrderRequest{ProductID: product.ID.String(), Quantity: 1, PaymentType: "installment", InstallmentPlan: 1}, utils.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.orderService.CreateOrder(ctx, tt.buyer, tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	var n int64
	require.NoError(t, env.db.Model(&db_models.Order{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestOrderService_ListBySide(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	x := env.seedUser(t, "x@x.com", db_models.UserTypeBoth)
	other := env.seedUser(t, "o@x.com", db_models.UserTypeBoth)
	xProduct := env.seedProduct(t, x.ID, 1000, false)
	otherProduct := env.seedProduct(t, other.ID, 2000, false)

	sold := env.createOrder(t, other.ID, xProduct.ID, 1)
	bought := env.createOrder(t, x.ID, otherProduct.ID, 1)

	for _, status := range []string{"", "pending", "confirmed"} {
		orders, err := env.orderService.ListOrders(ctx, x.ID, request_models.ListOrdersQuery{Type: "seller", Status: status})
		require.NoError(t, err)
		for _, o := range orders {
			assert.Equal(t, x.ID.String(), o.SellerID)
			assert.NotEqual(t, bought.String(), o.ID)
		}
		if status != "confirmed" {
			require.Len(t, orders, 1)
			assert.Equal(t, sold.String(), orders[0].ID)
		} else {
			assert.Empty(t, orders)
		}
	}

	orders, err := env.orderService.ListOrders(ctx, x.ID, request_models.ListOrdersQuery{})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, bought.String(), orders[0].ID)

	_, err = env.orderService.ListOrders(ctx, x.ID, request_models.ListOrdersQuery{Type: "admin"})
	assert.ErrorIs(t, err, utils.ErrValidation)
	_, err = env.orderService.ListOrders(ctx, x.ID, request_models.ListOrdersQuery{Status: "lost"})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestOrderService_GetHidesOrdersFromStrangers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	stranger := env.seedUser(t, "s@x.com", db_models.UserTypeBuyer)
	orderID := env.createOrder(t, buyer.ID, env.seedProduct(t, seller.ID, 100, false).ID, 1)

	_, err := env.orderService.GetOrder(ctx, seller.ID, orderID)
	assert.NoError(t, err)
	_, err = env.orderService.GetOrder(ctx, stranger.ID, orderID)
	assert.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestOrderService_DeliveryReleasesEscrow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	product := env.seedProduct(t, seller.ID, 5000, false)
	orderID := env.createOrder(t, buyer.ID, product.ID, 2)

	_, err := env.orderService.UpdateStatus(ctx, seller.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "in_transit"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition, "unpaid orders do not ship")

	_, err = env.paymentService.ProcessPayment(ctx, buyer.ID, request_models.ProcessPaymentRequest{
		OrderID: orderID.String(), PaymentMethod: "card", Amount: 10000,
	})
	require.NoError(t, err)

	before := env.balance(t, seller.ID)
	assert.Equal(t, int64(10000), before.Escrow)
	assert.Equal(t, int64(0), before.Available())

	_, err = env.orderService.UpdateStatus(ctx, buyer.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "in_transit"})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = env.orderService.UpdateStatus(ctx, seller.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "delivered"})
	assert.ErrorIs(t, err, utils.ErrInvalidTransition, "cannot skip in_transit")

	_, err = env.orderService.UpdateStatus(ctx, seller.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "in_transit"})
	require.NoError(t, err)

	delivered, err := env.orderService.UpdateStatus(ctx, buyer.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "delivered", delivered.Status)
	assert.Equal(t, "released", delivered.EscrowStatus)

	after := env.balance(t, seller.ID)
	assert.Equal(t, int64(0), after.Escrow)
	assert.Equal(t, before.Available()+10000, after.Available())

	_, err = env.orderService.CancelOrder(ctx, buyer.ID, orderID)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition, "delivered orders are final")
}

func TestOrderService_CancelPaidOrderRefunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	product := env.seedProduct(t, seller.ID, 7500, false)
	orderID := env.createOrder(t, buyer.ID, product.ID, 1)

	_, err := env.paymentService.ProcessPayment(ctx, buyer.ID, request_models.ProcessPaymentRequest{
		OrderID: orderID.String(), PaymentMethod: "bank_transfer", Amount: 7500,
	})
	require.NoError(t, err)

	cancelled, err := env.orderService.UpdateStatus(ctx, buyer.ID, orderID, request_models.UpdateOrderStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	assert.Equal(t, "refunded", cancelled.EscrowStatus)
	assert.Equal(t, "refunded", cancelled.PaymentStatus)

	sellerBalance := env.balance(t, seller.ID)
	assert.Equal(t, int64(0), sellerBalance.Total)
	assert.Equal(t, int64(0), sellerBalance.Escrow)

	buyerBalance := env.balance(t, buyer.ID)
	assert.Equal(t, int64(7500), buyerBalance.Available())

	_, err = env.orderService.CancelOrder(ctx, seller.ID, orderID)
	assert.ErrorIs(t, err, utils.ErrInvalidTransition)

	assert.Equal(t, []events.Type{events.OrderCreated, events.PaymentCompleted, events.OrderCancelled}, env.publisher.types())
}

func TestOrderService_CancelUnpaidOrderWritesNoLedger(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	orderID := env.createOrder(t, buyer.ID, env.seedProduct(t, seller.ID, 100, false).ID, 1)

	cancelled, err := env.orderService.CancelOrder(ctx, seller.ID, orderID)
	require.NoError(t, err)
	assert.Equal(t, "refunded", cancelled.EscrowStatus)
	assert.Equal(t, "unpaid", cancelled.PaymentStatus)

	var n int64
	require.NoError(t, env.db.Model(&db_models.WalletTransaction{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestOrderService_ListOrdersReturnsEveryOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := env.seedUser(t, "seller@x.com", db_models.UserTypeSeller)
	buyer := env.seedUser(t, "buyer@x.com", db_models.UserTypeBuyer)
	product := env.seedProduct(t, seller.ID, 1000, false)
	for i := 0; i < 25; i++ {
		env.createOrder(t, buyer.ID, product.ID, 1)
	}

	sold, err := env.orderService.ListOrders(ctx, seller.ID, request_models.ListOrdersQuery{Type: "seller"})
	require.NoError(t, err)
	assert.Len(t, sold, 25)

	bought, err := env.orderService.ListOrders(ctx, buyer.ID, request_models.ListOrdersQuery{})
	require.NoError(t, err)
	assert.Len(t, bought, 25)
}
