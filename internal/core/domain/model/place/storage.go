package place

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrInsufficientStorage is matched when a pickup asks for more than the
// origin holds.
var ErrInsufficientStorage = errors.New("insufficient storage")

// InsufficientStorageError reports the shortfall of a failed pickup. The
// ledger is left untouched.
type InsufficientStorageError struct {
	LoadClass kernel.LoadClass
	Requested int
	Available int
}

func (e *InsufficientStorageError) Error() string {
	return fmt.Sprintf("%s: %d %s requested, %d available",
		ErrInsufficientStorage, e.Requested, e.LoadClass, e.Available)
}

func (e *InsufficientStorageError) Unwrap() error {
	return ErrInsufficientStorage
}

// Delivery records goods handed over to a Destination.
type Delivery struct {
	ID          kernel.UUID
	PlaceID     kernel.UUID
	VehicleID   kernel.UUID
	LoadClass   kernel.LoadClass
	Quantity    int
	DeliveredAt time.Time
}

// storage is the capability a place kind brings: either a ledger of stock
// per load class or a sink that only records what arrived.
type storage interface {
	pickUp(lc kernel.LoadClass, qty int) error
	deliver(placeID, vehicleID kernel.UUID, lc kernel.LoadClass, qty int)
	quantity(lc kernel.LoadClass) int
	stock() map[kernel.LoadClass]int
	deliveries() []Delivery
}

func storageFor(kind kernel.PlaceKind, stock map[kernel.LoadClass]int) (storage, error) {
	switch kind {
	case kernel.PlaceKindTrainStation, kernel.PlaceKindAirport, kernel.PlaceKindPort:
		return newLedger(stock)
	case kernel.PlaceKindDestination:
		return &sink{}, nil
	}
	return nil, kind.Validate()
}

type ledger struct {
	items map[kernel.LoadClass]int
}

func newLedger(stock map[kernel.LoadClass]int) (*ledger, error) {
	l := &ledger{items: make(map[kernel.LoadClass]int, len(stock))}
	for lc, qty := range stock {
		if qty < 0 {
			return nil, errs.NewValueIsOutOfRangeError(string(lc), qty, 0, "unbounded")
		}
		if qty > 0 {
			l.items[lc] = qty
		}
	}
	return l, nil
}

func (l *ledger) pickUp(lc kernel.LoadClass, qty int) error {
	available := l.items[lc]
	if available < qty {
		return &InsufficientStorageError{LoadClass: lc, Requested: qty, Available: available}
	}
	l.items[lc] = available - qty
	return nil
}

func (l *ledger) deliver(_, _ kernel.UUID, lc kernel.LoadClass, qty int) {
	l.items[lc] += qty
}

func (l *ledger) quantity(lc kernel.LoadClass) int {
	return l.items[lc]
}

// stock includes zeroed entries so a drained class is written back as 0.
func (l *ledger) stock() map[kernel.LoadClass]int {
	out := make(map[kernel.LoadClass]int, len(l.items))
	for lc, qty := range l.items {
		out[lc] = qty
	}
	return out
}

func (l *ledger) deliveries() []Delivery { return nil }

type sink struct {
	received []Delivery
}

func (s *sink) pickUp(kernel.LoadClass, int) error { return nil }

func (s *sink) deliver(placeID, vehicleID kernel.UUID, lc kernel.LoadClass, qty int) {
	s.received = append(s.received, Delivery{
		ID:          kernel.NewUUID(),
		PlaceID:     placeID,
		VehicleID:   vehicleID,
		LoadClass:   lc,
		Quantity:    qty,
		DeliveredAt: time.Now().UTC(),
	})
}

func (s *sink) quantity(kernel.LoadClass) int { return 0 }

func (s *sink) stock() map[kernel.LoadClass]int { return nil }

func (s *sink) deliveries() []Delivery {
	out := make([]Delivery, len(s.received))
	copy(out, s.received)
	return out
}
