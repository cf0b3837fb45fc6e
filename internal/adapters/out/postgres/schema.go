package postgres

import (
	"freight/internal/adapters/out/postgres/georepo"
	"freight/internal/adapters/out/postgres/placerepo"
	"freight/internal/adapters/out/postgres/requestrepo"
	"freight/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Tables lists every table of the schema in dependency order.
var Tables = []string{
	"nations", "cities",
	"places", "place_cities", "place_storage", "deliveries",
	"transport_means", "transport_requests",
}

// Migrate creates or updates the schema, including the check constraints
// that keep stock and vehicle loads non-negative.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&georepo.NationDTO{},
		&georepo.CityDTO{},
		&placerepo.PlaceDTO{},
		&placerepo.PlaceCityDTO{},
		&placerepo.StorageDTO{},
		&placerepo.DeliveryDTO{},
		&vehiclerepo.VehicleDTO{},
		&requestrepo.TransportRequestDTO{},
	)
}
