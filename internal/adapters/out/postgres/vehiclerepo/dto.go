package vehiclerepo

import (
	"fmt"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Type     string      `gorm:"type:varchar(32);not null;index"`
	Capacity int         `gorm:"type:int;not null;check:chk_transport_means_capacity,capacity > 0"`
	Load     int         `gorm:"type:int;not null;default:0;check:chk_transport_means_load,load >= 0 AND load <= capacity"`
	LoadType string      `gorm:"type:varchar(32);not null;default:'EMPTY'"`
	Location LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (VehicleDTO) TableName() string {
	return "transport_means"
}

type LocationDTO struct {
	PlaceID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind    string    `gorm:"type:varchar(32);not null"`
}

func fromDomain(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:       v.ID().Value(),
		Type:     string(v.Type()),
		Capacity: v.Capacity(),
		Load:     v.Load(),
		LoadType: string(v.LoadType()),
		Location: LocationDTO{
			PlaceID: v.Location().PlaceID().Value(),
			Kind:    string(v.Location().Kind()),
		},
	}
}

func toDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	restored, err := restore(dto)
	if err != nil {
		return nil, errs.NewInternalFaultError(fmt.Sprintf("decode vehicle %s", dto.ID), err)
	}
	return restored, nil
}

func restore(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	typ, err := fleet.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	placeID, err := kernel.UUIDOf(dto.Location.PlaceID)
	if err != nil {
		return nil, err
	}
	kind, err := kernel.ParsePlaceKind(dto.Location.Kind)
	if err != nil {
		return nil, err
	}
	loc, err := kernel.NewLocation(placeID, kind)
	if err != nil {
		return nil, err
	}

	return fleet.RestoreVehicle(id, typ, dto.Capacity, dto.Load, kernel.LoadClass(dto.LoadType), loc)
}
