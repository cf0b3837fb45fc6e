package commands

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateTransportRequestCommandIsNotConstructed = errors.New(
	"CreateTransportRequestCommand must be created via NewCreateTransportRequestCommand constructor",
)

// PlaceRef is a decoded client reference.
type PlaceRef struct {
	Reference string
	Kind      kernel.PlaceKind
	ID        kernel.UUID
}

// CreateTransportRequestCommand asks for quantity units of a load class to be
// carried from one place to another. References are decoded when the command
// is built, so a malformed reference never reaches the store.
type CreateTransportRequestCommand struct {
	from        PlaceRef
	to          PlaceRef
	loadClass   kernel.LoadClass
	quantity    int
	requestedAt time.Time
	guard       guard.ConstructorGuard
}

// NewCreateTransportRequestCommand validates every field and reports all
// problems at once. A zero requestedAt means "now" and is filled in by the
// handler.
func NewCreateTransportRequestCommand(
	fromRef, toRef string,
	loadType string,
	quantity int,
	requestedAt time.Time,
) (CreateTransportRequestCommand, error) {
	from, fromErr := decodeRef(fromRef)
	to, toErr := decodeRef(toRef)
	lc, lcErr := kernel.NewLoadClass(loadType)

	var qtyErr error
	if quantity <= 0 {
		qtyErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if err := errors.Join(fromErr, toErr, lcErr, qtyErr); err != nil {
		return CreateTransportRequestCommand{}, err
	}

	return CreateTransportRequestCommand{
		from:        from,
		to:          to,
		loadClass:   lc,
		quantity:    quantity,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func decodeRef(ref string) (PlaceRef, error) {
	kind, id, err := kernel.DecodeReference(ref)
	if err != nil {
		return PlaceRef{}, err
	}
	return PlaceRef{Reference: ref, Kind: kind, ID: id}, nil
}

func (c CreateTransportRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateTransportRequestCommandIsNotConstructed)
}

func (c CreateTransportRequestCommand) From() PlaceRef              { return c.from }
func (c CreateTransportRequestCommand) To() PlaceRef                { return c.to }
func (c CreateTransportRequestCommand) LoadClass() kernel.LoadClass { return c.loadClass }
func (c CreateTransportRequestCommand) Quantity() int               { return c.quantity }
func (c CreateTransportRequestCommand) RequestedAt() time.Time      { return c.requestedAt }
