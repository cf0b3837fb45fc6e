package kernel

import (
	"errors"
	"fmt"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when a zero value Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation")

// Location is where a vehicle currently stands: a place id together with the
// kind of that place.
type Location struct { //nolint:recvcheck //using for validation
	placeID UUID
	kind    PlaceKind
	guard   guard.ConstructorGuard
}

func NewLocation(placeID UUID, kind PlaceKind) (Location, error) {
	if err := errors.Join(placeID.Validate(), kind.Validate()); err != nil {
		return Location{}, err
	}
	return Location{placeID: placeID, kind: kind, guard: guard.NewConstructorGuard()}, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) PlaceID() UUID {
	return l.placeID
}

func (l Location) Kind() PlaceKind {
	return l.kind
}

func (l Location) IsEqual(other Location) bool {
	return l.placeID.IsEqual(other.placeID) && l.kind == other.kind
}

func (l Location) String() string {
	return fmt.Sprintf("%s(%s)", l.kind, l.placeID)
}
