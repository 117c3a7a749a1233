package orderrepo

import (
	"context"
	"errors"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Ids and receipt times come from the injected generator and clock, never from the client.
type GormOrderRepository struct {
	db    *gorm.DB
	ids   kernel.IDGenerator
	clock kernel.Clock
}

func NewGormOrderRepository(db *gorm.DB, ids kernel.IDGenerator, clock kernel.Clock) *GormOrderRepository {
	return &GormOrderRepository{
		db:    db,
		ids:   ids,
		clock: clock,
	}
}

// Insert stores a new order with its items.
func (r *GormOrderRepository) Insert(ctx context.Context, details order.Details) (*order.Order, error) {
	created, err := order.NewOrder(r.ids.Next(), r.clock.Now(), details)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(created)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, errs.NewPersistenceError("insert order", err)
	}

	return created, nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, err := r.first(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// ListAll retrieves every order oldest first.
func (r *GormOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Order("received_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatusForIDs changes status in a single UPDATE ... WHERE id IN (...).
func (r *GormOrderRepository) UpdateStatusForIDs(
	ctx context.Context,
	ids []kernel.OrderID,
	status order.Status,
) (int64, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id IN ?", raw).
		Update("status", int(status))
	if result.Error != nil {
		return 0, errs.NewPersistenceError("update order status", result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteByID locks the row, reads it, then deletes it. Items go with it through
// the cascading foreign key.
func (r *GormOrderRepository) DeleteByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	dto, err := r.first(db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
	if err != nil {
		return nil, err
	}

	deleted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return nil, errs.NewPersistenceError("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	return deleted, nil
}

// MaxID returns the highest stored id, or zero when the table is empty.
func (r *GormOrderRepository) MaxID(ctx context.Context) (kernel.OrderID, error) {
	var maxID int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error
	if err != nil {
		return 0, errs.NewPersistenceError("max order id", err)
	}
	return kernel.OrderID(maxID), nil
}

func (r *GormOrderRepository) first(db *gorm.DB, id kernel.OrderID) (OrderDTO, error) {
	var dto OrderDTO
	err := db.Preload("Items", orderItems).First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDTO{}, errs.NewObjectNotFoundError("orderId", id)
		}
		return OrderDTO{}, errs.NewPersistenceError("get order", err)
	}
	return dto, nil
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
