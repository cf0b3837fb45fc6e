package place

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrPlaceIsNotConstructed = errors.New("Place must be created via NewPlace or RestorePlace constructor")
	ErrStreetIsRequired      = errs.NewValueIsRequiredError("street")
)

// Place is a stop goods move between: a train station, an airport, a port or
// a final destination. Hubs (everything except Destination) keep a stock
// ledger per load class whose quantities never go negative. A Destination
// accepts deliveries and records them.
//
// TrainStation and Destination serve exactly one city. Airport and Port serve
// one or more; the first city is the primary one and decides the nation shown
// to clients.
type Place struct {
	id      kernel.UUID
	kind    kernel.PlaceKind
	street  string
	cityIDs []kernel.UUID
	storage storage
	guard   guard.ConstructorGuard
}

// NewPlace creates a place with an empty ledger.
func NewPlace(id kernel.UUID, kind kernel.PlaceKind, street string, cityIDs []kernel.UUID) (*Place, error) {
	return RestorePlace(id, kind, street, cityIDs, nil)
}

// RestorePlace rebuilds a place from storage. stock is ignored for
// Destinations.
func RestorePlace(
	id kernel.UUID,
	kind kernel.PlaceKind,
	street string,
	cityIDs []kernel.UUID,
	stock map[kernel.LoadClass]int,
) (*Place, error) {
	p := &Place{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setID(id),
		p.setKind(kind),
		p.setStreet(street),
	); err != nil {
		return nil, err
	}
	if err := p.setCities(cityIDs); err != nil {
		return nil, err
	}

	s, err := storageFor(kind, stock)
	if err != nil {
		return nil, err
	}
	p.storage = s
	return p, nil
}

func (p *Place) Validate() error {
	if p == nil {
		return ErrPlaceIsNotConstructed
	}
	return p.guard.Validate(ErrPlaceIsNotConstructed)
}

func (p *Place) ID() kernel.UUID          { return p.id }
func (p *Place) Kind() kernel.PlaceKind   { return p.kind }
func (p *Place) Street() string           { return p.street }
func (p *Place) PrimaryCity() kernel.UUID { return p.cityIDs[0] }

// CityIDs returns the linked cities in their stored order.
func (p *Place) CityIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(p.cityIDs))
	copy(out, p.cityIDs)
	return out
}

func (p *Place) Reference() kernel.Reference {
	return kernel.EncodeReference(p.kind, p.id)
}

// Location is the position a vehicle standing at this place reports.
func (p *Place) Location() kernel.Location {
	loc, _ := kernel.NewLocation(p.id, p.kind)
	return loc
}

// PickUp removes qty of lc from the ledger, or fails with
// InsufficientStorageError and changes nothing. Destinations hold no stock;
// picking up there is a no-op.
func (p *Place) PickUp(lc kernel.LoadClass, qty int) error {
	if err := validateQuantity(qty); err != nil {
		return err
	}
	return p.storage.pickUp(lc, qty)
}

// Deliver adds qty of lc to a hub ledger, or records a Delivery at a
// Destination.
func (p *Place) Deliver(vehicleID kernel.UUID, lc kernel.LoadClass, qty int) error {
	if err := errors.Join(vehicleID.Validate(), validateQuantity(qty)); err != nil {
		return err
	}
	p.storage.deliver(p.id, vehicleID, lc, qty)
	return nil
}

// Quantity is the current stock of lc; always 0 for Destinations.
func (p *Place) Quantity(lc kernel.LoadClass) int {
	return p.storage.quantity(lc)
}

// Stock returns a copy of the ledger, nil for Destinations.
func (p *Place) Stock() map[kernel.LoadClass]int {
	return p.storage.stock()
}

// Deliveries returns the deliveries recorded since the place was loaded.
func (p *Place) Deliveries() []Delivery {
	return p.storage.deliveries()
}

func (p *Place) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Place) setKind(kind kernel.PlaceKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	p.kind = kind
	return nil
}

func (p *Place) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return ErrStreetIsRequired
	}
	p.street = street
	return nil
}

func (p *Place) setCities(cityIDs []kernel.UUID) error {
	switch {
	case len(cityIDs) == 0:
		return errs.NewValueIsRequiredError("cities")
	case len(cityIDs) > 1 && !p.kind.MultiCity():
		return errs.NewValueIsInvalidErrorWithCause("cities",
			fmt.Errorf("%s serves exactly one city, got %d", p.kind, len(cityIDs)))
	}

	seen := make(map[kernel.UUID]struct{}, len(cityIDs))
	for _, id := range cityIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("cities", fmt.Errorf("city %s listed twice", id))
		}
		seen[id] = struct{}{}
	}
	p.cityIDs = append([]kernel.UUID(nil), cityIDs...)
	return nil
}

func validateQuantity(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", qty, 1, "unbounded")
	}
	return nil
}
