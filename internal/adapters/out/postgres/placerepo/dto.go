package placerepo

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

type PlaceDTO struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Kind    string         `gorm:"type:varchar(32);not null;index"`
	Street  string         `gorm:"type:varchar(255);not null"`
	Cities  []PlaceCityDTO `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	Storage []StorageDTO   `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

func (PlaceDTO) TableName() string {
	return "places"
}

// PlaceCityDTO links a place to a city. Position 0 is the primary city.
type PlaceCityDTO struct {
	PlaceID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CityID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position int       `gorm:"type:int;not null"`
}

func (PlaceCityDTO) TableName() string {
	return "place_cities"
}

type StorageDTO struct {
	PlaceID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadClass string    `gorm:"type:varchar(32);primaryKey"`
	Quantity  int       `gorm:"type:int;not null;check:chk_place_storage_quantity,quantity >= 0"`
}

func (StorageDTO) TableName() string {
	return "place_storage"
}

type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlaceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	VehicleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	LoadClass   string    `gorm:"type:varchar(32);not null"`
	Quantity    int       `gorm:"type:int;not null;check:chk_deliveries_quantity,quantity > 0"`
	DeliveredAt time.Time `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(p *place.Place) PlaceDTO {
	id := p.ID().Value()

	cities := make([]PlaceCityDTO, 0, len(p.CityIDs()))
	for i, cityID := range p.CityIDs() {
		cities = append(cities, PlaceCityDTO{PlaceID: id, CityID: cityID.Value(), Position: i})
	}

	return PlaceDTO{
		ID:      id,
		Kind:    string(p.Kind()),
		Street:  p.Street(),
		Cities:  cities,
		Storage: storageFromDomain(p),
	}
}

// storageFromDomain orders rows by load class so that upserts touch rows in a
// stable order.
func storageFromDomain(p *place.Place) []StorageDTO {
	stock := p.Stock()
	rows := make([]StorageDTO, 0, len(stock))
	for lc, qty := range stock {
		rows = append(rows, StorageDTO{PlaceID: p.ID().Value(), LoadClass: string(lc), Quantity: qty})
	}
	slices.SortFunc(rows, func(a, b StorageDTO) int { return strings.Compare(a.LoadClass, b.LoadClass) })
	return rows
}

func deliveriesFromDomain(p *place.Place) []DeliveryDTO {
	deliveries := p.Deliveries()
	rows := make([]DeliveryDTO, 0, len(deliveries))
	for _, d := range deliveries {
		rows = append(rows, DeliveryDTO{
			ID:          d.ID.Value(),
			PlaceID:     d.PlaceID.Value(),
			VehicleID:   d.VehicleID.Value(),
			LoadClass:   string(d.LoadClass),
			Quantity:    d.Quantity,
			DeliveredAt: d.DeliveredAt,
		})
	}
	return rows
}

func toDomain(dto PlaceDTO) (*place.Place, error) {
	restored, err := restore(dto)
	if err != nil {
		return nil, errs.NewInternalFaultError(fmt.Sprintf("decode place %s", dto.ID), err)
	}
	return restored, nil
}

func restore(dto PlaceDTO) (*place.Place, error) {
	id, err := kernel.UUIDOf(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := kernel.ParsePlaceKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	cities := slices.Clone(dto.Cities)
	slices.SortFunc(cities, func(a, b PlaceCityDTO) int { return a.Position - b.Position })
	cityIDs := make([]kernel.UUID, 0, len(cities))
	for _, c := range cities {
		cityID, err := kernel.UUIDOf(c.CityID)
		if err != nil {
			return nil, err
		}
		cityIDs = append(cityIDs, cityID)
	}

	stock := make(map[kernel.LoadClass]int, len(dto.Storage))
	for _, s := range dto.Storage {
		stock[kernel.LoadClass(s.LoadClass)] = s.Quantity
	}

	return place.RestorePlace(id, kind, dto.Street, cityIDs, stock)
}
