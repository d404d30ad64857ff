package order_test

import (
	"strings"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Wireless Mouse", "Black", 2, 19.99)
	require.NoError(t, err)
	return []order.Item{item}
}

func validCustomer(t *testing.T) order.CustomerDetails {
	t.Helper()
	customer, err := order.NewCustomerDetails("Jordan Reed", "+15550101", "42 Elm St", "")
	require.NoError(t, err)
	return customer
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validSellerID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		customer := validCustomer(t)
		items := validItems(t)

		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, customer, "vip customer", 39.98,
			items, order.PendingReview)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "ORD-1-1", o.OrderNumber())
		assert.True(t, o.SellerID().IsEqual(validSellerID))
		assert.Equal(t, customer, o.Customer())
		assert.Equal(t, "vip customer", o.InternalNotes())
		assert.InEpsilon(t, 39.98, o.TotalAmount(), 0.0001)
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, order.PendingReview, o.Status())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Minute)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "ORD-1-1", validSellerID, validCustomer(t), "", 10,
			validItems(t), order.PendingReview)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty order number", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", validSellerID, validCustomer(t), "", 10,
			validItems(t), order.PendingReview)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "orderNumber")
	})

	t.Run("should fail with unconstructed customer details", func(t *testing.T) {
		var invalidCustomer order.CustomerDetails

		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, invalidCustomer, "", 10,
			validItems(t), order.PendingReview)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "CustomerDetails must be created")
	})

	t.Run("should fail with negative total amount", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, validCustomer(t), "", -5,
			validItems(t), order.PendingReview)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "totalAmount")
		assert.Contains(t, err.Error(), "-5 is not greater than or equal to 0")
	})

	t.Run("should accept zero total amount", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, validCustomer(t), "", 0,
			validItems(t), order.PendingReview)

		require.NoError(t, err)
		assert.Zero(t, o.TotalAmount())
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, validCustomer(t), "", 10,
			nil, order.PendingReview)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("should fail with Unknown initial status", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1-1", validSellerID, validCustomer(t), "", 10,
			validItems(t), order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "is not a valid status")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidCustomer order.CustomerDetails

		o, err := order.NewOrder(invalidID, "", kernel.NewUUID(), invalidCustomer, "", -1,
			nil, order.Unknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "CustomerDetails must be created")
		assert.Contains(t, err.Error(), "totalAmount")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order preserving createdAt and status", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1-1", kernel.NewUUID(), validCustomer(t),
			"", 10, validItems(t), order.Confirmed, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject corrupted data", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "", kernel.NewUUID(), validCustomer(t),
			"", 10, validItems(t), order.Confirmed, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := kernel.NewUUID()

	t.Run("should return true for orders with same ID", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "ORD-1-1", kernel.NewUUID(), validCustomer(t), "", 10,
			validItems(t), order.PendingReview)
		o2, _ := order.NewOrder(id1, "ORD-2-2", kernel.NewUUID(), validCustomer(t), "", 99,
			validItems(t), order.Confirmed)

		assert.True(t, o1.IsEqual(o2))
		assert.True(t, o2.IsEqual(o1))
	})

	t.Run("should return false for orders with different IDs", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "ORD-1-1", kernel.NewUUID(), validCustomer(t), "", 10,
			validItems(t), order.PendingReview)
		o2, _ := order.NewOrder(id2, "ORD-1-1", kernel.NewUUID(), validCustomer(t), "", 10,
			validItems(t), order.PendingReview)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		o1, _ := order.NewOrder(id1, "ORD-1-1", kernel.NewUUID(), validCustomer(t), "", 10,
			validItems(t), order.PendingReview)

		assert.False(t, o1.IsEqual(nil))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1-1", kernel.NewUUID(), validCustomer(t),
			"", 10, validItems(t), order.PendingReview)
		require.NoError(t, err)
		return o
	}

	t.Run("should move order to a well-formed status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Confirmed, o.Status())
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.PendingReview, o.Status())
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Status(42))

		require.Error(t, err)
		assert.Equal(t, order.PendingReview, o.Status())
	})
}

func TestOrder_Items_Immutability(t *testing.T) {
	t.Run("should return a copy of the item list", func(t *testing.T) {
		item1, _ := order.NewItem(kernel.NewUUID(), "Wireless Mouse", "", 1, 19.99)
		item2, _ := order.NewItem(kernel.NewUUID(), "USB Hub", "", 1, 9.99)

		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1-1", kernel.NewUUID(), validCustomer(t),
			"", 29.98, []order.Item{item1, item2}, order.PendingReview)
		require.NoError(t, err)

		items := o.Items()
		items[0] = item2

		assert.Equal(t, "Wireless Mouse", o.Items()[0].ProductName())
	})
}

func TestNewOrderNumber(t *testing.T) {
	t.Run("should generate ORD-prefixed codes", func(t *testing.T) {
		number := order.NewOrderNumber()

		assert.True(t, strings.HasPrefix(number, "ORD-"))
		assert.GreaterOrEqual(t, strings.Count(number, "-"), 2)
	})
}
