// Package sellerrepo provides data transfer objects and mapping functions for
// seller profile persistence. Seller rows carry the ownership links the
// visibility rules depend on: the operating user and the managing admin.
package sellerrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

// SellerDTO represents the database structure for persisting seller profiles.
// user_id is unique because one user account operates at most one seller.
type SellerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AdminID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
}

// TableName specifies the database table name for seller entities.
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts a seller domain aggregate to its database representation.
func fromDomain(aggregate *seller.Seller) SellerDTO {
	return SellerDTO{
		ID:      aggregate.ID().Bytes(),
		UserID:  aggregate.UserID().Bytes(),
		AdminID: aggregate.AdminID().Bytes(),
		Name:    aggregate.Name(),
	}
}

// toDomain converts a database DTO to a seller domain aggregate.
func toDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	adminID, err := kernel.UUIDFromBytes(dto.AdminID[:])
	if err != nil {
		return nil, err
	}

	return seller.RestoreSeller(id, userID, adminID, dto.Name)
}
