// Package orderrepo maps the order aggregate onto the orders and order_items tables.
package orderrepo

import (
	"time"

	"pedidos/internal/core/domain/model/kernel"
	"pedidos/internal/core/domain/model/order"
)

// OrderDTO is one row of orders. Items live in order_items and are removed with
// their order by the ON DELETE CASCADE foreign key.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false"`
	Company      string    `gorm:"not null"`
	OrderDate    string    `gorm:"not null"`
	TotalVolumes int       `gorm:"not null"`
	ReceivedAt   time.Time `gorm:"not null;index:idx_orders_received_at,priority:1"`
	Status       int       `gorm:"type:smallint;not null"`
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one row of order_items. Position keeps the submission order.
type ItemDTO struct {
	OrderID  int64 `gorm:"primaryKey;autoIncrement:false"`
	Position int   `gorm:"primaryKey;autoIncrement:false"`
	Name     string
	Quantity int
}

func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	details := o.Details()
	items := make([]ItemDTO, 0, len(details.Items()))
	for i, item := range details.Items() {
		items = append(items, ItemDTO{
			OrderID:  o.ID().Int64(),
			Position: i,
			Name:     item.Name(),
			Quantity: item.Quantity(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Int64(),
		Company:      details.Company(),
		OrderDate:    details.OrderDate(),
		TotalVolumes: details.TotalVolumes(),
		ReceivedAt:   o.ReceivedAt(),
		Status:       int(o.Status()),
		Items:        items,
	}
}

// toDomain expects Items to be loaded in position order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, raw := range dto.Items {
		item, err := order.NewItem(raw.Name, raw.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	details, err := order.NewDetails(dto.Company, dto.OrderDate, dto.TotalVolumes, items)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(kernel.OrderID(dto.ID), dto.ReceivedAt.UTC(), details, order.Status(dto.Status))
}
