package kernel

import (
	"errors"
	"strings"

	"freight/internal/pkg/errs"
)

// LoadClass is the category of goods a request carries and a vehicle can hold.
// Values are stored upper case; matching against vehicle capabilities is exact
// on the normalized form.
type LoadClass string

const (
	LoadClassPackage  LoadClass = "PACKAGE"
	LoadClassStandard LoadClass = "STANDARD"
	LoadClassWideLoad LoadClass = "WIDE_LOAD"
	// LoadClassEmpty is the load type of an idle vehicle. It is never a valid
	// request load class.
	LoadClassEmpty LoadClass = "EMPTY"
)

var (
	ErrLoadClassIsRequired = errs.NewValueIsRequiredError("loadType")
	ErrLoadClassIsReserved = errs.NewValueIsInvalidErrorWithCause(
		"loadType", errors.New("EMPTY is reserved for idle vehicles"))
)

// NewLoadClass normalizes a client supplied load type. Unknown classes are
// accepted here; they simply match no vehicle type later on.
func NewLoadClass(raw string) (LoadClass, error) {
	normalized := LoadClass(strings.ToUpper(strings.TrimSpace(raw)))
	switch normalized {
	case "":
		return "", ErrLoadClassIsRequired
	case LoadClassEmpty:
		return "", ErrLoadClassIsReserved
	}
	return normalized, nil
}

// IsKnown reports whether the class is one the fleet can carry at all.
func (c LoadClass) IsKnown() bool {
	switch c {
	case LoadClassPackage, LoadClassStandard, LoadClassWideLoad:
		return true
	}
	return false
}

func (c LoadClass) String() string {
	return string(c)
}
