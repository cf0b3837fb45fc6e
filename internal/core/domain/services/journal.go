package services

import (
	"freight/internal/core/domain/model/kernel"
)

type MovementKind string

const (
	MovementRelocate MovementKind = "RELOCATE"
	MovementLoad     MovementKind = "LOAD"
	MovementMove     MovementKind = "MOVE"
	MovementDeliver  MovementKind = "DELIVER"
	MovementUnload   MovementKind = "UNLOAD"
)

// Movement is one persisted vehicle mutation.
type Movement struct {
	Kind      MovementKind
	VehicleID kernel.UUID
	From      kernel.Location
	To        kernel.Location
	LoadClass kernel.LoadClass
	Quantity  int
}

// Journal collects the movements of one fulfillment run in the order they
// were written. A nil *Journal is valid and records nothing.
type Journal struct {
	entries []Movement
}

func (j *Journal) record(m Movement) {
	if j == nil {
		return
	}
	j.entries = append(j.entries, m)
}

func (j *Journal) Entries() []Movement {
	if j == nil {
		return nil
	}
	out := make([]Movement, len(j.entries))
	copy(out, j.entries)
	return out
}

// Count returns how many movements of kind were recorded.
func (j *Journal) Count(kind MovementKind) int {
	if j == nil {
		return 0
	}
	n := 0
	for _, m := range j.entries {
		if m.Kind == kind {
			n++
		}
	}
	return n
}
