package orderrepo

import (
	"context"
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its items to the database and returns the
// aggregate as persisted, with database-assigned identifiers.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves an existing order to the database: the order row, updates to
// already persisted items, and inserts for items that have no id yet.
// Returns the aggregate as re-read from storage.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("customer_name", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", dto.ID)
	}

	for idx := range dto.Items {
		itemDTO := &dto.Items[idx]
		if itemDTO.ID == 0 {
			itemDTO.OrderID = &dto.ID
			if err := r.db.WithContext(ctx).Create(itemDTO).Error; err != nil {
				return nil, err
			}
			continue
		}

		if err := r.db.WithContext(ctx).
			Model(&ItemDTO{}).
			Where("id = ? AND order_id = ?", itemDTO.ID, dto.ID).
			Select("name", "price", "quantity").
			Updates(itemDTO).Error; err != nil {
			return nil, err
		}
	}

	persisted, err := r.Get(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Get retrieves an order by id, items included, ordered by item id.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("items.id ASC")
		}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and all of its items. The item rows are deleted
// explicitly so the ownership rule holds even without the database-level
// cascade. Deleting an absent order is a no-op.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("order_id = ?", id).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&OrderDTO{}, id).Error
}

// DeleteItem removes a single item owned by the given order. Removing an
// absent item, or one owned by a different order, is a no-op.
func (r *GormOrderRepository) DeleteItem(ctx context.Context, orderID, itemID int64) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Delete(&ItemDTO{}).Error
}
