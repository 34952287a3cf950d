// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its canonical uppercase name. Items reference orders
// with a cascade-deleting foreign key, so no orphan item rows can survive
// an order deletion.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName string    `gorm:"size:64;not null"`
	Status       string    `gorm:"size:32;not null;index"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	Items        []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting items.
// OrderID is nullable only transiently, before the row is associated
// with its owning order.
type ItemDTO struct {
	ID       int64   `gorm:"primaryKey;autoIncrement"`
	OrderID  *int64  `gorm:"index"`
	Name     string  `gorm:"size:128;not null"`
	Price    float64 `gorm:"not null"`
	Quantity int     `gorm:"not null;default:1"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order aggregate to its database representation,
// items included. Zero identifiers are kept as zero so the database
// assigns fresh ones on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerName: aggregate.CustomerName(),
		Status:       aggregate.Status().String(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Items:        items,
	}
}

// itemFromDomain converts a single item entity to its database representation.
func itemFromDomain(item *order.Item) ItemDTO {
	var orderID *int64
	if id := item.OrderID(); id != 0 {
		orderID = &id
	}

	return ItemDTO{
		ID:       item.ID(),
		OrderID:  orderID,
		Name:     item.Name(),
		Price:    item.Price(),
		Quantity: item.Quantity(),
	}
}

// toDomain converts a database DTO back to an order aggregate,
// reconstructing the items through their restore factories.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, dto.CustomerName, status, dto.CreatedAt, dto.UpdatedAt, items)
}

// itemToDomain converts a single item row back to a domain entity.
func itemToDomain(dto ItemDTO) (*order.Item, error) {
	var orderID int64
	if dto.OrderID != nil {
		orderID = *dto.OrderID
	}

	return order.RestoreItem(dto.ID, orderID, dto.Name, dto.Price, dto.Quantity)
}
