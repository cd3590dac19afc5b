package services

import (
	"context"
	"fmt"
	"strings"

	"gidimart/internal/models/db_models"
	"gidimart/internal/models/request_models"
	"gidimart/internal/models/response_models"
	"gidimart/internal/repositories"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductServiceInterface interface {
	ListProducts(ctx context.Context, query request_models.ProductListQuery) ([]response_models.ProductResponse, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*response_models.ProductResponse, error)
	CreateProduct(ctx context.Context, sellerID uuid.UUID, request request_models.CreateProductRequest) (*response_models.ProductResponse, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, request request_models.UpdateProductRequest) (*response_models.ProductResponse, error)
	DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error
	AddReview(ctx context.Context, reviewerID, productID uuid.UUID, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error)
}

type ProductService struct {
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	logger      *zap.Logger
}

func NewProductService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository, logger *zap.Logger) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (p *ProductService) ListProducts(ctx context.Context, query request_models.ProductListQuery) ([]response_models.ProductResponse, error) {
	page, limit, err := utils.ParsePagination(query.Page, query.Limit)
	if err != nil {
		return nil, err
	}

	if query.MinPrice != nil && query.MaxPrice != nil && *query.MinPrice > *query.MaxPrice {
		return nil, fmt.Errorf("minPrice cannot exceed maxPrice: %w", utils.ErrValidation)
	}

	rows, err := p.productRepo.List(ctx, repositories.ProductFilter{
		Category:  strings.TrimSpace(query.Category),
		Condition: query.Condition,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		Search:    query.Search,
	}, page, limit)
	if err != nil {
		return nil, dbError(err)
	}

	return response_models.NewProductRowResponses(rows), nil
}

func (p *ProductService) GetProduct(ctx context.Context, productID uuid.UUID) (*response_models.ProductResponse, error) {
	row, err := p.productRepo.FindRowByID(ctx, productID)
	if err != nil {
		return nil, dbError(err)
	}
	if row == nil {
		return nil, utils.ErrProductNotFound
	}
	if !row.IsActive {
		return nil, utils.ErrProductInactive
	}

	resp := response_models.NewProductRowResponse(row)
	return &resp, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, sellerID uuid.UUID, request request_models.CreateProductRequest) (*response_models.ProductResponse, error) {
	seller, err := p.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, dbError(err)
	}
	if seller == nil {
		return nil, utils.ErrUserNotFound
	}
	if !seller.UserType.CanSell() {
		return nil, utils.ErrForbidden
	}

	condition := db_models.ConditionNew
	if request.Condition != "" {
		condition = db_models.ProductCondition(request.Condition)
	}
	if !condition.Valid() {
		return nil, fmt.Errorf("condition must be new, used or refurbished: %w", utils.ErrValidation)
	}
	if request.Price <= 0 {
		return nil, fmt.Errorf("price must be positive: %w", utils.ErrValidation)
	}

	product := &db_models.Product{
		SellerID:           sellerID,
		Title:              strings.TrimSpace(request.Title),
		Description:        strings.TrimSpace(request.Description),
		Price:              request.Price,
		Category:           strings.TrimSpace(request.Category),
		Condition:          condition,
		Images:             db_models.StringList(request.Images),
		InstallmentEnabled: request.InstallmentEnabled,
		EscrowEnabled:      true,
		IsActive:           true,
	}
	if err := p.productRepo.Create(ctx, product); err != nil {
		return nil, dbError(err)
	}

	p.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("seller_id", sellerID.String()))

	resp := response_models.NewProductResponse(product)
	resp.SellerName = seller.DisplayName()
	return &resp, nil
}

// UpdateProduct never touches existing orders: they carry their own price snapshot.
func (p *ProductService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, request request_models.UpdateProductRequest) (*response_models.ProductResponse, error) {
	product, err := p.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if request.Title != nil {
		fields["title"] = strings.TrimSpace(*request.Title)
	}
	if request.Description != nil {
		fields["description"] = strings.TrimSpace(*request.Description)
	}
	if request.Price != nil {
		if *request.Price <= 0 {
			return nil, fmt.Errorf("price must be positive: %w", utils.ErrValidation)
		}
		fields["price"] = *request.Price
	}
	if request.Category != nil {
		fields["category"] = strings.TrimSpace(*request.Category)
	}
	if request.Condition != nil {
		condition := db_models.ProductCondition(*request.Condition)
		if !condition.Valid() {
			return nil, fmt.Errorf("condition must be new, used or refurbished: %w", utils.ErrValidation)
		}
		fields["condition"] = condition
	}
	if request.Images != nil {
		fields["images"] = db_models.StringList(*request.Images)
	}
	if request.InstallmentEnabled != nil {
		fields["installment_enabled"] = *request.InstallmentEnabled
	}

	if len(fields) > 0 {
		if err := p.productRepo.Update(ctx, product, fields); err != nil {
			return nil, dbError(err)
		}
	}

	return p.GetProduct(ctx, productID)
}

func (p *ProductService) DeactivateProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	product, err := p.ownedProduct(ctx, sellerID, productID)
	if err != nil {
		return err
	}

	if err := p.productRepo.Update(ctx, product, map[string]interface{}{"is_active": false}); err != nil {
		return dbError(err)
	}

	p.logger.Info("product deactivated", zap.String("product_id", productID.String()))
	return nil
}

func (p *ProductService) AddReview(ctx context.Context, reviewerID, productID uuid.UUID, request request_models.CreateReviewRequest) (*response_models.ReviewResponse, error) {
	if request.Rating < 1 || request.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", utils.ErrValidation)
	}

	product, err := p.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID == reviewerID {
		return nil, fmt.Errorf("sellers cannot review their own products: %w", utils.ErrValidation)
	}

	review := &db_models.Review{
		ProductID:  productID,
		ReviewerID: reviewerID,
		Rating:     request.Rating,
		Comment:    strings.TrimSpace(request.Comment),
	}
	if err := p.productRepo.CreateReview(ctx, review); err != nil {
		return nil, dbError(err)
	}

	resp := response_models.NewReviewResponse(review)
	return &resp, nil
}

func (p *ProductService) activeProduct(ctx context.Context, productID uuid.UUID) (*db_models.Product, error) {
	product, err := p.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, dbError(err)
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}
	if !product.IsActive {
		return nil, utils.ErrProductInactive
	}
	return product, nil
}

func (p *ProductService) ownedProduct(ctx context.Context, sellerID, productID uuid.UUID) (*db_models.Product, error) {
	product, err := p.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, utils.ErrForbidden
	}
	return product, nil
}
