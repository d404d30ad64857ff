package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler loads one order with its items. Orders outside the
// caller's visibility scope are reported as access denied, not as absent, so
// the transport layer can answer 403 rather than 404.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	scoper services.VisibilityScoper
}

// NewGetOrderQueryHandler creates a detail handler backed by the given DB.
func NewGetOrderQueryHandler(db *gorm.DB) (GetOrderQueryHandler, error) {
	if db == nil {
		return GetOrderQueryHandler{}, errs.NewValueIsRequiredErrorWithCause("db", ErrGormDbIsNil)
	}

	return GetOrderQueryHandler{db: db, scoper: services.NewVisibilityScoper()}, nil
}

// Handle returns the requested order, or errs.ObjectNotFoundError when no
// such order exists, or services.AccessDeniedError when it exists but the
// principal may not see it.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	scope, err := h.scoper.ScopeFor(query.Principal())
	if err != nil {
		return OrderResponse{}, err
	}

	response, visibility, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if !scope.Matches(visibility) {
		return OrderResponse{}, services.NewAccessDeniedError("You are not allowed to view this order.")
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadOrder(ctx context.Context, orderID kernel.UUID) (
	OrderResponse, services.OrderVisibility, error,
) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT o.id, o.order_number, o.seller_id, o.customer_name, o.customer_phone,
		       o.shipping_address, o.notes, o.internal_notes, o.total_amount, o.status, o.created_at,
		       s.user_id, s.admin_id
		FROM orders o
		JOIN sellers s ON s.id = o.seller_id
		WHERE o.id = ?`, orderID.Bytes()).Row()

	var (
		response      OrderResponse
		id            uuid.UUID
		sellerID      uuid.UUID
		statusStr     string
		sellerUserID  uuid.UUID
		sellerAdminID uuid.UUID
	)

	err := row.Scan(&id, &response.OrderNumber, &sellerID, &response.CustomerName,
		&response.CustomerPhone, &response.ShippingAddress, &response.Notes,
		&response.InternalNotes, &response.TotalAmount, &statusStr, &response.CreatedAt,
		&sellerUserID, &sellerAdminID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, services.OrderVisibility{}, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}
	if response.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}
	if response.Status, err = order.StatusFromString(statusStr); err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}

	userID, err := kernel.UUIDFromBytes(sellerUserID[:])
	if err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}
	adminID, err := kernel.UUIDFromBytes(sellerAdminID[:])
	if err != nil {
		return OrderResponse{}, services.OrderVisibility{}, err
	}

	visibility := services.OrderVisibility{
		SellerID:      response.SellerID,
		SellerUserID:  userID,
		SellerAdminID: adminID,
		Status:        response.Status,
	}

	return response, visibility, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, product_name, variant_label, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []OrderItemResponse{}
	for rows.Next() {
		var (
			item      OrderItemResponse
			productID uuid.UUID
		)
		err = rows.Scan(&productID, &item.ProductName, &item.VariantLabel, &item.Quantity, &item.UnitPrice)
		if err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
