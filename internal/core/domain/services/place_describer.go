package services

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/place"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// DescribePlace resolves the city and nation names of p. City names keep the
// link order of the place and the nation is the one of the primary city.
// Missing cities or nations show as place.Unknown.
func DescribePlace(ctx context.Context, geoRepo ports.GeoRepository, p *place.Place) (place.View, error) {
	cities, err := geoRepo.GetCities(ctx, p.CityIDs())
	if err != nil {
		return place.View{}, err
	}

	names := make([]string, 0, len(cities))
	for _, id := range p.CityIDs() {
		for _, c := range cities {
			if c.ID().IsEqual(id) {
				names = append(names, c.Name())
				break
			}
		}
	}

	nation := ""
	for _, c := range cities {
		if !c.ID().IsEqual(p.PrimaryCity()) {
			continue
		}
		n, err := geoRepo.GetNation(ctx, c.NationID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			break
		}
		if err != nil {
			return place.View{}, err
		}
		nation = n.Name()
		break
	}

	return place.NewView(p.Reference(), p.Street(), names, nation), nil
}
