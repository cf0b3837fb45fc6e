package services_test

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// memoryFleet is an in-memory VehicleRepository that ranks candidates the
// same way the postgres repository does.
type memoryFleet struct {
	vehicles map[kernel.UUID]*fleet.Vehicle
	writes   []string
	failOn   error
}

func newMemoryFleet(vs ...*fleet.Vehicle) *memoryFleet {
	f := &memoryFleet{vehicles: map[kernel.UUID]*fleet.Vehicle{}}
	for _, v := range vs {
		f.vehicles[v.ID()] = v
	}
	return f
}

func (f *memoryFleet) Add(_ context.Context, v *fleet.Vehicle) error {
	f.vehicles[v.ID()] = v
	return nil
}

func (f *memoryFleet) Update(_ context.Context, v *fleet.Vehicle) error {
	if f.failOn != nil {
		return f.failOn
	}
	if _, ok := f.vehicles[v.ID()]; !ok {
		return errs.NewObjectNotFoundError("vehicle", v.ID())
	}
	f.writes = append(f.writes, fmt.Sprintf("%s load=%d at=%s", v.ID(), v.Load(), v.Location().PlaceID()))
	return nil
}

func (f *memoryFleet) Get(_ context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}
	return v, nil
}

func (f *memoryFleet) FindIdle(_ context.Context, q ports.IdleVehicleQuery) (*fleet.Vehicle, error) {
	var candidates []*fleet.Vehicle
	for _, v := range f.vehicles {
		if !v.IsIdle() || !slices.Contains(q.Types, v.Type()) {
			continue
		}
		if q.At != nil && !v.IsAt(*q.At) {
			continue
		}
		if slices.ContainsFunc(q.Exclude, v.ID().IsEqual) {
			continue
		}
		candidates = append(candidates, v)
	}
	if len(candidates) == 0 {
		return nil, errs.NewObjectNotFoundError("vehicle", "idle")
	}
	slices.SortFunc(candidates, func(a, b *fleet.Vehicle) int {
		return cmp.Or(
			cmp.Compare(slices.Index(q.Types, a.Type()), slices.Index(q.Types, b.Type())),
			cmp.Compare(abs(a.Capacity()-q.Remaining), abs(b.Capacity()-q.Remaining)),
			a.ID().Compare(b.ID()),
		)
	})
	return candidates[0], nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// memoryPlaces is an in-memory PlaceRepository recording every write.
type memoryPlaces struct {
	places  map[kernel.UUID]*place.Place
	updates int
}

func newMemoryPlaces(ps ...*place.Place) *memoryPlaces {
	m := &memoryPlaces{places: map[kernel.UUID]*place.Place{}}
	for _, p := range ps {
		m.places[p.ID()] = p
	}
	return m
}

func (m *memoryPlaces) Add(_ context.Context, p *place.Place) error {
	m.places[p.ID()] = p
	return nil
}

func (m *memoryPlaces) Update(_ context.Context, p *place.Place) error {
	if _, ok := m.places[p.ID()]; !ok {
		return errors.New("unknown place")
	}
	m.updates++
	return nil
}

func (m *memoryPlaces) Get(_ context.Context, id kernel.UUID) (*place.Place, error) {
	p, ok := m.places[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("place", id)
	}
	return p, nil
}

func (m *memoryPlaces) GetForUpdate(ctx context.Context, id kernel.UUID) (*place.Place, error) {
	return m.Get(ctx, id)
}
