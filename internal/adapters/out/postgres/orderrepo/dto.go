// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by seller and status.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"uniqueIndex"`
	SellerID        uuid.UUID `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	Notes           string
	InternalNotes   string
	TotalAmount     float64
	Status          string         `gorm:"index"`
	CreatedAt       time.Time      `gorm:"index"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line in its own table. The position
// column preserves the original item ordering and forms the composite
// primary key together with the owning order.
type OrderItemDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	ProductName  string
	VariantLabel string
	Quantity     int
	UnitPrice    float64
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// The status enum is stored as its canonical string so raw queries and
// operators can read it without a decoding table.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for position, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			Position:     position,
			ProductID:    item.ProductID().Bytes(),
			ProductName:  item.ProductName(),
			VariantLabel: item.VariantLabel(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		SellerID:        aggregate.SellerID().Bytes(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		ShippingAddress: aggregate.Customer().ShippingAddress(),
		Notes:           aggregate.Customer().Notes(),
		InternalNotes:   aggregate.InternalNotes(),
		TotalAmount:     aggregate.TotalAmount(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and customer details
// using RestoreOrder, so stored data that violates invariants is rejected.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerDetails(dto.CustomerName, dto.CustomerPhone, dto.ShippingAddress, dto.Notes)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.ProductName, itemDTO.VariantLabel,
			itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.OrderNumber, sellerID, customer, dto.InternalNotes,
		dto.TotalAmount, items, status, dto.CreatedAt)
}
