package fleet

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Type is the closed set of vehicle types. Names are case sensitive.
type Type string

const (
	TypeLocalServing Type = "LocalServing"
	TypeLorry        Type = "Lorry"
	TypeTrain        Type = "Train"
	TypePlane        Type = "Plane"
	TypeShip         Type = "Ship"
)

// Types lists every vehicle type in preference order: specialized carriers
// first, then road vehicles.
var Types = []Type{TypeTrain, TypePlane, TypeShip, TypeLorry, TypeLocalServing}

func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case TypeLocalServing, TypeLorry, TypeTrain, TypePlane, TypeShip:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicleType", fmt.Errorf("unknown type %q", string(t)))
}

// Carries reports whether vehicles of this type accept lc.
func (t Type) Carries(lc kernel.LoadClass) bool {
	switch t {
	case TypeLocalServing:
		return lc == kernel.LoadClassPackage
	case TypeLorry, TypeShip:
		return lc == kernel.LoadClassPackage || lc == kernel.LoadClassStandard || lc == kernel.LoadClassWideLoad
	case TypeTrain:
		return lc == kernel.LoadClassStandard || lc == kernel.LoadClassWideLoad
	case TypePlane:
		return lc == kernel.LoadClassPackage || lc == kernel.LoadClassStandard
	}
	return false
}

// Serves reports whether the type may travel from a place of kind from to a
// place of kind to. Rail, air and sea need a matching hub at both ends; road
// vehicles go anywhere.
func (t Type) Serves(from, to kernel.PlaceKind) bool {
	switch t {
	case TypeTrain:
		return from == kernel.PlaceKindTrainStation && to == kernel.PlaceKindTrainStation
	case TypePlane:
		return from == kernel.PlaceKindAirport && to == kernel.PlaceKindAirport
	case TypeShip:
		return from == kernel.PlaceKindPort && to == kernel.PlaceKindPort
	case TypeLorry, TypeLocalServing:
		return true
	}
	return false
}

func (t Type) String() string {
	return string(t)
}
