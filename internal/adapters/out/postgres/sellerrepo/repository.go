package sellerrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/seller"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSellerRepository implements SellerRepository using GORM.
type GormSellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRepository creates a new GORM seller repository.
func NewGormSellerRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRepository {
	return &GormSellerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller profile to the database.
func (r *GormSellerRepository) Add(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a seller by ID.
func (r *GormSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the seller profile operated by the given user account.
func (r *GormSellerRepository) GetByUserID(ctx context.Context, userID kernel.UUID) (*seller.Seller, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
