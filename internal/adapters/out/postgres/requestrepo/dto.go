package requestrepo

import (
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/request"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TransportRequestDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	FromPlaceID uuid.UUID      `gorm:"type:uuid;not null;index"`
	FromKind    string         `gorm:"type:varchar(32);not null"`
	ToPlaceID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	ToKind      string         `gorm:"type:varchar(32);not null"`
	LoadClass   string         `gorm:"type:varchar(32);not null"`
	Quantity    int            `gorm:"type:int;not null;check:chk_transport_requests_quantity,quantity > 0"`
	Status      string         `gorm:"type:varchar(16);not null;index"`
	RequestedAt time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null;autoUpdateTime:false"`
	VehicleIDs  pq.StringArray `gorm:"type:text[]"`
}

func (TransportRequestDTO) TableName() string {
	return "transport_requests"
}

func fromDomain(r *request.TransportRequest) TransportRequestDTO {
	vehicleIDs := make(pq.StringArray, 0, len(r.VehicleIDs()))
	for _, id := range r.VehicleIDs() {
		vehicleIDs = append(vehicleIDs, id.String())
	}

	return TransportRequestDTO{
		ID:          r.ID().Value(),
		FromPlaceID: r.From().PlaceID().Value(),
		FromKind:    string(r.From().Kind()),
		ToPlaceID:   r.To().PlaceID().Value(),
		ToKind:      string(r.To().Kind()),
		LoadClass:   string(r.LoadClass()),
		Quantity:    r.Quantity(),
		Status:      r.Status().String(),
		RequestedAt: r.RequestedAt(),
		UpdatedAt:   r.UpdatedAt(),
		VehicleIDs:  vehicleIDs,
	}
}

func toDomain(dto TransportRequestDTO) (*request.TransportRequest, error) {
	restored, err := restore(dto)
	if err != nil {
		return nil, errs.NewInternalFaultError(fmt.Sprintf("decode transport request %s", dto.ID), err)
	}
	return restored, nil
}

func restore(dto TransportRequestDTO) (*request.TransportRequest, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	from, err := location(dto.FromPlaceID, dto.FromKind)
	if err != nil {
		return nil, err
	}
	to, err := location(dto.ToPlaceID, dto.ToKind)
	if err != nil {
		return nil, err
	}
	status, err := request.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]kernel.UUID, 0, len(dto.VehicleIDs))
	for _, raw := range dto.VehicleIDs {
		vid, err := kernel.ParseUUID(raw)
		if err != nil {
			return nil, err
		}
		vehicleIDs = append(vehicleIDs, vid)
	}

	return request.RestoreTransportRequest(
		id, from, to,
		kernel.LoadClass(dto.LoadClass), dto.Quantity,
		status, dto.RequestedAt, dto.UpdatedAt,
		vehicleIDs,
	)
}

func location(placeID uuid.UUID, kind string) (kernel.Location, error) {
	id, err := kernel.UUIDOf(placeID)
	if err != nil {
		return kernel.Location{}, err
	}
	k, err := kernel.ParsePlaceKind(kind)
	if err != nil {
		return kernel.Location{}, err
	}
	return kernel.NewLocation(id, k)
}
