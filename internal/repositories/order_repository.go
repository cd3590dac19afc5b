package repositories

import (
	"context"
	"errors"

	"gidimart/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRole string

const (
	OrderRoleBuyer  OrderRole = "buyer"
	OrderRoleSeller OrderRole = "seller"
)

// OrderRow is an order joined with the product it is for and the name of
// the party on the other side from the caller.
type OrderRow struct {
	db_models.Order
	ProductTitle   string               `gorm:"column:product_title"`
	ProductImages  db_models.StringList `gorm:"column:product_images"`
	OtherPartyName string               `gorm:"column:other_party_name"`
}

type OrderRepository interface {
	WithTx(tx *gorm.DB) OrderRepository
	Create(ctx context.Context, order *db_models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*db_models.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID, role OrderRole, status string) ([]OrderRow, error)
	Update(ctx context.Context, order *db_models.Order, fields map[string]interface{}) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (o *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &orderRepository{db: tx}
}

func (o *orderRepository) Create(ctx context.Context, order *db_models.Order) error {
	return o.db.WithContext(ctx).Create(order).Error
}

func (o *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	return o.find(o.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
// SQLite ignores the locking clause.
func (o *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	db := o.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return o.find(db, id)
}

// ListForUser returns every order on the given side of the user, newest first.
func (o *orderRepository) ListForUser(ctx context.Context, userID uuid.UUID, role OrderRole, status string) ([]OrderRow, error) {
	partyColumn, otherColumn := "o.buyer_id", "o.seller_id"
	if role == OrderRoleSeller {
		partyColumn, otherColumn = "o.seller_id", "o.buyer_id"
	}

	q := o.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.*,
			p.title AS product_title,
			p.images AS product_images,
			TRIM(u.first_name || ' ' || u.last_name) AS other_party_name`).
		Joins("JOIN products p ON p.id = o.product_id").
		Joins("JOIN users u ON u.id = "+otherColumn).
		Where(partyColumn+" = ?", userID)

	if status != "" {
		q = q.Where("o.status = ?", status)
	}

	rows := []OrderRow{}
	err := q.Order("o.created_at DESC").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (o *orderRepository) Update(ctx context.Context, order *db_models.Order, fields map[string]interface{}) error {
	return o.db.WithContext(ctx).Model(order).Updates(fields).Error
}

func (o *orderRepository) find(db *gorm.DB, id uuid.UUID) (*db_models.Order, error) {
	var order db_models.Order
	if err := db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
