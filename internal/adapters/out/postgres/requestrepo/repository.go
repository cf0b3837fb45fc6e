// Package requestrepo stores transport requests.
package requestrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/request"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/pgerr"

	"gorm.io/gorm"
)

type GormTransportRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTransportRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormTransportRequestRepository {
	return &GormTransportRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTransportRequestRepository) Add(ctx context.Context, aggregate *request.TransportRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add transport request", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTransportRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.TransportRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransportRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transport request", id.String())
		}
		return nil, pgerr.Classify("get transport request", err)
	}

	return toDomain(dto)
}
