package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Get retrieves an order by ID, items included.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus moves an order from one status to another with a single
// compare-and-swap statement. The WHERE clause matches both id and the
// expected current status, so two operators racing on the same order
// cannot both win: the loser's update matches zero rows and is reported
// as a version conflict.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error {
	err := errors.Join(id.Validate(), from.Validate(), to.Validate())
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means either the order is gone or someone else changed
		// its status first. Distinguish the two for the caller.
		var count int64
		countErr := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", id.Bytes()).Count(&count).Error
		if countErr != nil {
			return countErr
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return errs.NewVersionIsInvalidErrorWithCause("status")
	}

	return nil
}
