package seller_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/seller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeller(t *testing.T) {
	validID := kernel.NewUUID()
	validUserID := kernel.NewUUID()
	validAdminID := kernel.NewUUID()

	t.Run("should create valid seller with all valid parameters", func(t *testing.T) {
		s, err := seller.NewSeller(validID, validUserID, validAdminID, "Acme Outlet")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(validID))
		assert.True(t, s.UserID().IsEqual(validUserID))
		assert.True(t, s.AdminID().IsEqual(validAdminID))
		assert.Equal(t, "Acme Outlet", s.Name())
	})

	t.Run("should fail with unconstructed IDs", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := seller.NewSeller(invalidID, validUserID, validAdminID, "Acme Outlet")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		s, err := seller.NewSeller(validID, validUserID, validAdminID, "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		s, err := seller.NewSeller(invalidID, invalidID, invalidID, "")

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
	})
}

func TestSeller_Validate(t *testing.T) {
	t.Run("should fail validation for nil seller", func(t *testing.T) {
		var s *seller.Seller

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, seller.ErrSellerIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value seller", func(t *testing.T) {
		var s seller.Seller

		err := s.Validate()

		require.Error(t, err)
		assert.Equal(t, seller.ErrSellerIsNotConstructed, err)
	})
}

func TestSeller_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should compare sellers by ID only", func(t *testing.T) {
		s1, _ := seller.NewSeller(id, kernel.NewUUID(), kernel.NewUUID(), "Acme Outlet")
		s2, _ := seller.NewSeller(id, kernel.NewUUID(), kernel.NewUUID(), "Other Name")

		assert.True(t, s1.IsEqual(s2))
	})

	t.Run("should return false when comparing with nil", func(t *testing.T) {
		s1, _ := seller.NewSeller(id, kernel.NewUUID(), kernel.NewUUID(), "Acme Outlet")

		assert.False(t, s1.IsEqual(nil))
	})
}

func TestRestoreSeller(t *testing.T) {
	t.Run("should reject corrupted data", func(t *testing.T) {
		s, err := seller.RestoreSeller(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, s)
	})
}
