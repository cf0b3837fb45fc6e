// Package vehiclerepo stores the fleet and implements idle vehicle selection.
package vehiclerepo

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *fleet.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("add vehicle", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable state of a vehicle: its cargo and its location.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *fleet.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"load":              dto.Load,
			"load_type":         dto.LoadType,
			"location_place_id": dto.Location.PlaceID,
			"location_kind":     dto.Location.Kind,
		})
	if result.Error != nil {
		return pgerr.Classify("update vehicle", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, pgerr.Classify("get vehicle", err)
	}

	return toDomain(dto)
}

// FindIdle selects at most one idle vehicle ordered by type rank, then by the
// distance between capacity and the remaining quantity, then by id. The row is
// locked with FOR UPDATE SKIP LOCKED so concurrent runs never pick the same
// vehicle.
func (r *GormVehicleRepository) FindIdle(ctx context.Context, query ports.IdleVehicleQuery) (*fleet.Vehicle, error) {
	if len(query.Types) == 0 {
		return nil, errs.NewValueIsRequiredError("types")
	}

	types := make([]string, len(query.Types))
	for i, t := range query.Types {
		types[i] = string(t)
	}

	q := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("load = 0").
		Where("type IN ?", types)
	if query.At != nil {
		q = q.Where("location_place_id = ? AND location_kind = ?",
			query.At.PlaceID().Value(), string(query.At.Kind()))
	}
	if len(query.Exclude) > 0 {
		excluded := make([]uuid.UUID, len(query.Exclude))
		for i, id := range query.Exclude {
			excluded[i] = id.Value()
		}
		q = q.Where("id NOT IN ?", excluded)
	}

	var dtos []VehicleDTO
	err := q.
		Order(rankOrder(types, query.Remaining)).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("find idle vehicle", err)
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("vehicle", strings.Join(types, ","))
	}

	return toDomain(dtos[0])
}

func rankOrder(types []string, remaining int) clause.OrderBy {
	var sql strings.Builder
	vars := make([]any, 0, len(types)+1)

	sql.WriteString("CASE type")
	for rank, t := range types {
		sql.WriteString(" WHEN ? THEN " + strconv.Itoa(rank))
		vars = append(vars, t)
	}
	sql.WriteString(" END, ABS(capacity - ?), id")
	vars = append(vars, remaining)

	return clause.OrderBy{Expression: clause.Expr{SQL: sql.String(), Vars: vars, WithoutParentheses: true}}
}
