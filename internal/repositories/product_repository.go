package repositories

import (
	"context"
	"errors"
	"strings"

	"gidimart/internal/models/db_models"
	"gidimart/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Category  string
	Condition string
	MinPrice  *int64
	MaxPrice  *int64
	Search    string
}

// ProductRow is a product joined with its seller name and review aggregates.
type ProductRow struct {
	db_models.Product
	SellerName    string  `gorm:"column:seller_name"`
	AverageRating float64 `gorm:"column:average_rating"`
	ReviewCount   int64   `gorm:"column:review_count"`
}

type ProductRepository interface {
	WithTx(tx *gorm.DB) ProductRepository
	Create(ctx context.Context, product *db_models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error)
	FindRowByID(ctx context.Context, id uuid.UUID) (*ProductRow, error)
	List(ctx context.Context, filter ProductFilter, page, limit int) ([]ProductRow, error)
	Update(ctx context.Context, product *db_models.Product, fields map[string]interface{}) error
	CreateReview(ctx context.Context, review *db_models.Review) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &productRepository{db: tx}
}

func (p *productRepository) Create(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) FindRowByID(ctx context.Context, id uuid.UUID) (*ProductRow, error) {
	var rows []ProductRow
	err := p.baseQuery(ctx).
		Where("p.id = ?", id).
		Group("p.id, u.first_name, u.last_name").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// List returns active products matching every supplied filter, newest first.
func (p *productRepository) List(ctx context.Context, filter ProductFilter, page, limit int) ([]ProductRow, error) {
	q := p.baseQuery(ctx).Where("p.is_active = ?", true)

	if filter.Category != "" {
		q = q.Where("p.category = ?", filter.Category)
	}
	if filter.Condition != "" {
		q = q.Where("p.condition = ?", filter.Condition)
	}
	if filter.MinPrice != nil {
		q = q.Where("p.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("p.price <= ?", *filter.MaxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		q = q.Where(`(LOWER(p.title) LIKE ? ESCAPE '\' OR LOWER(p.description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}

	rows := []ProductRow{}
	err := q.Group("p.id, u.first_name, u.last_name").
		Order("p.created_at DESC").
		Offset(utils.Offset(page, limit)).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *productRepository) Update(ctx context.Context, product *db_models.Product, fields map[string]interface{}) error {
	return p.db.WithContext(ctx).Model(product).Updates(fields).Error
}

func (p *productRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return p.db.WithContext(ctx).Create(review).Error
}

func (p *productRepository) baseQuery(ctx context.Context) *gorm.DB {
	return p.db.WithContext(ctx).
		Table("products AS p").
		Select(`p.*,
			TRIM(u.first_name || ' ' || u.last_name) AS seller_name,
			CAST(COALESCE(AVG(r.rating), 0) AS FLOAT) AS average_rating,
			COUNT(r.id) AS review_count`).
		Joins("JOIN users u ON u.id = p.seller_id").
		Joins("LEFT JOIN reviews r ON r.product_id = p.id")
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
