package services

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
)

// ErrNoCompatibleVehicle is returned when no vehicle type can carry the load
// class on the requested route.
var ErrNoCompatibleVehicle = errors.New("no compatible vehicle type")

type CompatibilityResolver struct{}

func NewCompatibilityResolver() CompatibilityResolver {
	return CompatibilityResolver{}
}

// Resolve returns the eligible vehicle types, most specialized first. The
// order is the allocation preference.
func (CompatibilityResolver) Resolve(from, to kernel.PlaceKind, lc kernel.LoadClass) ([]fleet.Type, error) {
	var eligible []fleet.Type
	for _, t := range fleet.Types {
		if t.Carries(lc) && t.Serves(from, to) {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return nil, fmt.Errorf("%w: %s from %s to %s", ErrNoCompatibleVehicle, lc, from, to)
	}
	return eligible, nil
}
