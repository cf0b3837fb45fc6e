// Package placerepo stores places with their city links, the stock ledger of
// hubs and the deliveries recorded at Destinations.
package placerepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/pgerr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPlaceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPlaceRepository(db *gorm.DB, tracker aggregateTracker) *GormPlaceRepository {
	return &GormPlaceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPlaceRepository) Add(ctx context.Context, aggregate *place.Place) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add place", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update upserts the stock rows of the place and inserts deliveries that are
// not stored yet. The place row itself is immutable.
func (r *GormPlaceRepository) Update(ctx context.Context, aggregate *place.Place) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	db := r.db.WithContext(ctx)

	var found int64
	if err := db.Model(&PlaceDTO{}).Where("id = ?", aggregate.ID().Value()).Count(&found).Error; err != nil {
		return pgerr.Classify("update place", err)
	}
	if found == 0 {
		return errs.NewObjectNotFoundError("place", aggregate.ID().String())
	}

	if rows := storageFromDomain(aggregate); len(rows) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}, {Name: "load_class"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
		}).Create(&rows).Error
		if err != nil {
			return pgerr.Classify("update place storage", err)
		}
	}

	if rows := deliveriesFromDomain(aggregate); len(rows) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return pgerr.Classify("record deliveries", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPlaceRepository) Get(ctx context.Context, id kernel.UUID) (*place.Place, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate takes a FOR UPDATE lock on the place row. Every writer of the
// stock rows goes through this lock first.
func (r *GormPlaceRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*place.Place, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPlaceRepository) get(db *gorm.DB, id kernel.UUID) (*place.Place, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PlaceDTO
	err := db.
		Preload("Cities", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Storage").
		First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("place", id.String())
		}
		return nil, pgerr.Classify("get place", err)
	}

	return toDomain(dto)
}
