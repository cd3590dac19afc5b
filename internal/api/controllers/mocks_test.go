package controllers

import (
	"context"

	"gidimart/internal/models/request_models"
	"gidimart/internal/models/response_models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockAccountService struct{ mock.Mock }

func (m *mockAccountService) Register(ctx context.Context, r request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	args := m.Called(ctx, r)
	resp, _ := args.Get(0).(*response_models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) Login(ctx context.Context, r request_models.LoginRequest) (*response_models.AuthResponse, error) {
	args := m.Called(ctx, r)
	resp, _ := args.Get(0).(*response_models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) SocialAuth(ctx context.Context, r request_models.SocialAuthRequest) (*response_models.AuthResponse, error) {
	args := m.Called(ctx, r)
	resp, _ := args.Get(0).(*response_models.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) GetProfile(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*response_models.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, userID uuid.UUID, r request_models.UpdateProfileRequest) (*response_models.UserResponse, error) {
	args := m.Called(ctx, userID, r)
	resp, _ := args.Get(0).(*response_models.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) SubmitKYC(ctx context.Context, userID uuid.UUID) (*response_models.UserResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*response_models.UserResponse)
	return resp, args.Error(1)
}

func (m *mockAccountService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, r request_models.CreateOrderRequest) (*response_models.OrderResponse, error) {
	args := m.Called(ctx, buyerID, r)
	resp, _ := args.Get(0).(*response_models.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, userID uuid.UUID, q request_models.ListOrdersQuery) ([]response_models.OrderResponse, error) {
	args := m.Called(ctx, userID, q)
	resp, _ := args.Get(0).([]response_models.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	args := m.Called(ctx, userID, orderID)
	resp, _ := args.Get(0).(*response_models.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, r request_models.UpdateOrderStatusRequest) (*response_models.OrderResponse, error) {
	args := m.Called(ctx, userID, orderID, r)
	resp, _ := args.Get(0).(*response_models.OrderResponse)
	return resp, args.Error(1)
}

func (m *mockOrderService) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*response_models.OrderResponse, error) {
	args := m.Called(ctx, userID, orderID)
	resp, _ := args.Get(0).(*response_models.OrderResponse)
	return resp, args.Error(1)
}

type mockPaymentService struct{ mock.Mock }

func (m *mockPaymentService) ProcessPayment(ctx context.Context, payerID uuid.UUID, r request_models.ProcessPaymentRequest) (*response_models.PaymentResult, error) {
	args := m.Called(ctx, payerID, r)
	resp, _ := args.Get(0).(*response_models.PaymentResult)
	return resp, args.Error(1)
}

func (m *mockPaymentService) ListPayments(ctx context.Context, userID, orderID uuid.UUID) ([]response_models.PaymentResponse, error) {
	args := m.Called(ctx, userID, orderID)
	resp, _ := args.Get(0).([]response_models.PaymentResponse)
	return resp, args.Error(1)
}

type mockWalletService struct{ mock.Mock }

func (m *mockWalletService) GetBalance(ctx context.Context, userID uuid.UUID) (*response_models.BalanceResponse, error) {
	args := m.Called(ctx, userID)
	resp, _ := args.Get(0).(*response_models.BalanceResponse)
	return resp, args.Error(1)
}

func (m *mockWalletService) ListTransactions(ctx context.Context, userID uuid.UUID, page, limit string) ([]response_models.WalletTransactionResponse, error) {
	args := m.Called(ctx, userID, page, limit)
	resp, _ := args.Get(0).([]response_models.WalletTransactionResponse)
	return resp, args.Error(1)
}

func (m *mockWalletService) TopUp(ctx context.Context, userID uuid.UUID, r request_models.TopUpRequest) (*response_models.WalletTransactionResponse, error) {
	args := m.Called(ctx, userID, r)
	resp, _ := args.Get(0).(*response_models.WalletTransactionResponse)
	return resp, args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context, q request_models.ProductListQuery) ([]response_models.ProductResponse, error) {
	args := m.Called(ctx, q)
	resp, _ := args.Get(0).([]response_models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*response_models.ProductResponse, error) {
	args := m.Called(ctx, productID)
	resp, _ := args.Get(0).(*response_models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, sellerID uuid.UUID, r request_models.CreateProductRequest) (*response_models.ProductResponse, error) {
	args := m.Called(ctx, sellerID, r)
	resp, _ := args.Get(0).(*response_models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, r request_models.UpdateProductRequest) (*response_models.ProductResponse, error) {
	args := m.Called(ctx, sellerID, productID, r)
	resp, _ := args.Get(0).(*response_models.ProductResponse)
	return resp, args.Error(1)
}

func (m *mockProductService) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	return m.Called(ctx, sellerID, productID).Error(0)
}

func (m *mockProductService) AddReview(ctx context.Context, reviewerID, productID uuid.UUID, r request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	args := m.Called(ctx, reviewerID, productID, r)
	resp, _ := args.Get(0).(*response_models.ReviewResponse)
	return resp, args.Error(1)
}
