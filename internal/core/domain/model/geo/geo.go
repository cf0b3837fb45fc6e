package geo

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrNationIsNotConstructed = errors.New("Nation must be created via NewNation constructor")
	ErrCityIsNotConstructed   = errors.New("City must be created via NewCity constructor")
)

// Nation is immutable reference data; its name is unique.
type Nation struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

func NewNation(id kernel.UUID, name string) (*Nation, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(id.Validate(), requireName(name)); err != nil {
		return nil, err
	}
	return &Nation{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
}

func (n *Nation) Validate() error {
	if n == nil {
		return ErrNationIsNotConstructed
	}
	return n.guard.Validate(ErrNationIsNotConstructed)
}

func (n *Nation) ID() kernel.UUID { return n.id }
func (n *Nation) Name() string    { return n.name }

// City belongs to exactly one Nation.
type City struct {
	id       kernel.UUID
	name     string
	postcode string
	nationID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewCity(id kernel.UUID, name, postcode string, nationID kernel.UUID) (*City, error) {
	name = strings.TrimSpace(name)
	if err := errors.Join(id.Validate(), requireName(name), nationID.Validate()); err != nil {
		return nil, err
	}
	return &City{
		id:       id,
		name:     name,
		postcode: strings.TrimSpace(postcode),
		nationID: nationID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c *City) Validate() error {
	if c == nil {
		return ErrCityIsNotConstructed
	}
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func (c *City) ID() kernel.UUID       { return c.id }
func (c *City) Name() string          { return c.name }
func (c *City) Postcode() string      { return c.postcode }
func (c *City) NationID() kernel.UUID { return c.nationID }

func requireName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	return nil
}
