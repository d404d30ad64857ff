package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.PendingReview))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Cancelled))
		assert.Equal(t, 4, int(order.Packed))
		assert.Equal(t, 5, int(order.OutForDelivery))
		assert.Equal(t, 6, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.PendingReview,
			order.Confirmed,
			order.Cancelled,
			order.Packed,
			order.OutForDelivery,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "value is invalid: status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.PendingReview, "PENDING_REVIEW"},
			{order.Confirmed, "CONFIRMED"},
			{order.Cancelled, "CANCELLED"},
			{order.Packed, "PACKED"},
			{order.OutForDelivery, "OUT_FOR_DELIVERY"},
			{order.Delivered, "DELIVERED"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "UNKNOWN", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid wire strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"PENDING_REVIEW", order.PendingReview},
			{"CONFIRMED", order.Confirmed},
			{"CANCELLED", order.Cancelled},
			{"PACKED", order.Packed},
			{"OUT_FOR_DELIVERY", order.OutForDelivery},
			{"DELIVERED", order.Delivered},
		}

		for _, tc := range testCases {
			t.Run("should parse "+tc.input, func(t *testing.T) {
				status, err := order.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		invalidInputs := []string{"", "UNKNOWN", "pending_review", "Confirmed", "SHIPPED"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := order.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, order.Unknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		for _, status := range []order.Status{
			order.PendingReview, order.Confirmed, order.Cancelled,
			order.Packed, order.OutForDelivery, order.Delivered,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_IsWritableTarget(t *testing.T) {
	t.Run("should accept exactly the three writable targets", func(t *testing.T) {
		assert.True(t, order.Confirmed.IsWritableTarget())
		assert.True(t, order.Cancelled.IsWritableTarget())
		assert.True(t, order.Packed.IsWritableTarget())
	})

	t.Run("should reject everything else", func(t *testing.T) {
		nonTargets := []order.Status{
			order.Unknown,
			order.PendingReview,
			order.OutForDelivery,
			order.Delivered,
			order.Status(100),
		}

		for _, status := range nonTargets {
			t.Run(fmt.Sprintf("should reject %s", status.String()), func(t *testing.T) {
				assert.False(t, status.IsWritableTarget())
			})
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Cancelled and Packed as terminal", func(t *testing.T) {
		assert.True(t, order.Cancelled.IsTerminal())
		assert.True(t, order.Packed.IsTerminal())
	})

	t.Run("should report other statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.PendingReview.IsTerminal())
		assert.False(t, order.Confirmed.IsTerminal())
		assert.False(t, order.OutForDelivery.IsTerminal())
		assert.False(t, order.Delivered.IsTerminal())
	})
}
