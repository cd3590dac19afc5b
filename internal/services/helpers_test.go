package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gidimart/internal/events"
	"gidimart/internal/identity"
	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/internal/repositories"
	"gidimart/internal/testutil"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testBcryptCost = 10

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(_ context.Context, ev events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingPublisher) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

type mockProvider struct {
	mock.Mock
	name string
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) ExchangeCodeForProfile(ctx context.Context, code string) (*identity.Profile, error) {
	args := m.Called(ctx, code)
	profile, _ := args.Get(0).(*identity.Profile)
	return profile, args.Error(1)
}

type testEnv struct {
	db        *gorm.DB
	users     repositories.UserRepository
	products  repositories.ProductRepository
	orders    repositories.OrderRepository
	payments  repositories.PaymentRepository
	wallet    repositories.WalletRepository
	publisher *recordingPublisher
	tokens    *utils.TokenManager

	accounts       AccountServiceInterface
	productService ProductServiceInterface
	orderService   OrderServiceInterface
	paymentService PaymentServiceInterface
	walletService  WalletServiceInterface
}

func newTestEnv(t *testing.T, providers ...identity.Provider) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	logger := zap.NewNop()

	env := &testEnv{
		db:        db,
		users:     repositories.NewUserRepository(db),
		products:  repositories.NewProductRepository(db),
		orders:    repositories.NewOrderRepository(db),
		payments:  repositories.NewPaymentRepository(db),
		wallet:    repositories.NewWalletRepository(db),
		publisher: &recordingPublisher{},
		tokens:    utils.NewTokenManager("test-secret", 30*24*time.Hour),
	}
	env.accounts = NewAccountService(env.users, env.wallet, identity.NewRegistry(providers...), env.tokens, testBcryptCost, logger)
	env.productService = NewProductService(env.products, env.users, logger)
	env.orderService = NewOrderService(db, env.orders, env.products, env.wallet, env.publisher, logger)
	env.paymentService = NewPaymentService(db, env.orders, env.payments, env.wallet, env.publisher, logger)
	env.walletService = NewWalletService(env.wallet, env.publisher, logger)
	return env
}

func (e *testEnv) seedUser(t *testing.T, email string, userType db_models.UserType) *db_models.User {
	t.Helper()
	phone := "+234" + uuid.NewString()[:10]
	user := &db_models.User{
		FirstName:    "Test",
		LastName:     email,
		Email:        email,
		Phone:        &phone,
		UserType:     userType,
		KYCStatus:    db_models.KYCPending,
		AuthProvider: db_models.AuthProviderPassword,
		IsActive:     true,
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) seedProduct(t *testing.T, sellerID uuid.UUID, price int64, installments bool) *db_models.Product {
	t.Helper()
	product := &db_models.Product{
		SellerID:           sellerID,
		Title:              "Samsung Galaxy A54",
		Description:        "Brand new, sealed",
		Price:              price,
		Category:           "phones",
		Condition:          db_models.ConditionNew,
		InstallmentEnabled: installments,
		EscrowEnabled:      true,
		IsActive:           true,
	}
	require.NoError(t, e.products.Create(context.Background(), product))
	return product
}

func (e *testEnv) createOrder(t *testing.T, buyerID, productID uuid.UUID, quantity int) uuid.UUID {
	t.Helper()
	order, err := e.orderService.CreateOrder(context.Background(), buyerID, request_models.CreateOrderRequest{
		ProductID: productID.String(),
		Quantity:  quantity,
	})
	require.NoError(t, err)
	return uuid.MustParse(order.ID)
}

func (e *testEnv) balance(t *testing.T, userID uuid.UUID) repositories.Balance {
	t.Helper()
	b, err := e.wallet.Balance(context.Background(), userID)
	require.NoError(t, err)
	return b
}
