// Package georepo stores nations and cities.
package georepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/geo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormGeoRepository struct {
	db *gorm.DB
}

func NewGormGeoRepository(db *gorm.DB) *GormGeoRepository {
	return &GormGeoRepository{db: db}
}

func (r *GormGeoRepository) AddNation(ctx context.Context, nation *geo.Nation) error {
	if err := nation.Validate(); err != nil {
		return err
	}
	dto := NationDTO{ID: nation.ID().Value(), Name: nation.Name()}
	return pgerr.Classify("add nation", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormGeoRepository) AddCity(ctx context.Context, city *geo.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	dto := CityDTO{
		ID:       city.ID().Value(),
		Name:     city.Name(),
		Postcode: city.Postcode(),
		NationID: city.NationID().Value(),
	}
	return pgerr.Classify("add city", r.db.WithContext(ctx).Omit("Nation").Create(&dto).Error)
}

// GetCities keeps the order of ids; ids without a row are skipped.
func (r *GormGeoRepository) GetCities(ctx context.Context, ids []kernel.UUID) ([]*geo.City, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.Value()
	}

	var dtos []CityDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("get cities", err)
	}
	byID := make(map[uuid.UUID]CityDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	cities := make([]*geo.City, 0, len(dtos))
	for _, id := range raw {
		dto, ok := byID[id]
		if !ok {
			continue
		}
		city, err := cityToDomain(dto)
		if err != nil {
			return nil, errs.NewInternalFaultError(fmt.Sprintf("decode city %s", dto.ID), err)
		}
		cities = append(cities, city)
	}
	return cities, nil
}

func (r *GormGeoRepository) GetNation(ctx context.Context, id kernel.UUID) (*geo.Nation, error) {
	var dto NationDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("nation", id.String())
		}
		return nil, pgerr.Classify("get nation", err)
	}

	nation, err := nationToDomain(dto)
	if err != nil {
		return nil, errs.NewInternalFaultError(fmt.Sprintf("decode nation %s", dto.ID), err)
	}
	return nation, nil
}

func nationToDomain(dto NationDTO) (*geo.Nation, error) {
	nationID, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	return geo.NewNation(nationID, dto.Name)
}

func cityToDomain(dto CityDTO) (*geo.City, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	nationID, err := kernel.UUIDOf(dto.NationID)
	if err != nil {
		return nil, err
	}
	return geo.NewCity(id, dto.Name, dto.Postcode, nationID)
}
