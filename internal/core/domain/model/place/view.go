package place

import (
	"strings"

	"freight/internal/core/domain/model/kernel"
)

// Unknown replaces a city or nation name that could not be resolved.
const Unknown = "Unknown"

// View is the client facing description of a place.
type View struct {
	Reference kernel.Reference
	Street    string
	City      string
	Nation    string
}

// NewView joins cityNames with ", " in the given order. nation is the nation
// of the primary city.
func NewView(ref kernel.Reference, street string, cityNames []string, nation string) View {
	names := make([]string, 0, len(cityNames))
	for _, n := range cityNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	city := strings.Join(names, ", ")
	if city == "" {
		city = Unknown
	}
	if strings.TrimSpace(nation) == "" {
		nation = Unknown
	}
	return View{Reference: ref, Street: street, City: city, Nation: nation}
}
