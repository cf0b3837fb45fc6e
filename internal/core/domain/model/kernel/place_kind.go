package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// PlaceKind is the closed set of place variants. Names are case sensitive and
// double as the kind prefix of a place Reference.
type PlaceKind string

const (
	PlaceKindTrainStation PlaceKind = "TrainStation"
	PlaceKindDestination  PlaceKind = "Destination"
	PlaceKindAirport      PlaceKind = "Airport"
	PlaceKindPort         PlaceKind = "Port"
)

// PlaceKinds lists every kind in a fixed order.
var PlaceKinds = []PlaceKind{
	PlaceKindTrainStation,
	PlaceKindDestination,
	PlaceKindAirport,
	PlaceKindPort,
}

func ParsePlaceKind(s string) (PlaceKind, error) {
	k := PlaceKind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k PlaceKind) Validate() error {
	switch k {
	case PlaceKindTrainStation, PlaceKindDestination, PlaceKindAirport, PlaceKindPort:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("placeKind", fmt.Errorf("unknown kind %q", string(k)))
}

// HasStorage reports whether places of this kind keep a storage ledger.
// Destinations only receive goods.
func (k PlaceKind) HasStorage() bool {
	return k != PlaceKindDestination
}

// MultiCity reports whether a place of this kind may serve several cities.
func (k PlaceKind) MultiCity() bool {
	return k == PlaceKindAirport || k == PlaceKindPort
}

func (k PlaceKind) String() string {
	return string(k)
}
