package request

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var ErrTransportRequestIsNotConstructed = errors.New(
	"TransportRequest must be created via NewTransportRequest or RestoreTransportRequest constructor")

// TransportRequest is the record of a shipment between two places: what was
// asked for and which vehicles carried it.
type TransportRequest struct {
	id          kernel.UUID
	from        kernel.Location
	to          kernel.Location
	loadClass   kernel.LoadClass
	quantity    int
	status      Status
	requestedAt time.Time
	updatedAt   time.Time
	vehicleIDs  []kernel.UUID

	isConstructed bool
}

func NewTransportRequest(
	id kernel.UUID,
	from, to kernel.Location,
	loadClass kernel.LoadClass,
	quantity int,
	requestedAt time.Time,
) (*TransportRequest, error) {
	r := &TransportRequest{
		status:        Created,
		requestedAt:   requestedAt.UTC(),
		updatedAt:     requestedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setRoute(from, to),
		r.setLoad(loadClass, quantity),
		r.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreTransportRequest rebuilds a stored request.
func RestoreTransportRequest(
	id kernel.UUID,
	from, to kernel.Location,
	loadClass kernel.LoadClass,
	quantity int,
	status Status,
	requestedAt, updatedAt time.Time,
	vehicleIDs []kernel.UUID,
) (*TransportRequest, error) {
	r := &TransportRequest{
		requestedAt:   requestedAt.UTC(),
		updatedAt:     updatedAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setRoute(from, to),
		r.setLoad(loadClass, quantity),
		r.setRequestedAt(requestedAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	r.status = status
	r.vehicleIDs = append([]kernel.UUID(nil), vehicleIDs...)
	return r, nil
}

func (r *TransportRequest) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrTransportRequestIsNotConstructed
	}
	return nil
}

func (r *TransportRequest) ID() kernel.UUID             { return r.id }
func (r *TransportRequest) From() kernel.Location       { return r.from }
func (r *TransportRequest) To() kernel.Location         { return r.to }
func (r *TransportRequest) LoadClass() kernel.LoadClass { return r.loadClass }
func (r *TransportRequest) Quantity() int               { return r.quantity }
func (r *TransportRequest) Status() Status              { return r.status }
func (r *TransportRequest) RequestedAt() time.Time      { return r.requestedAt }
func (r *TransportRequest) UpdatedAt() time.Time        { return r.updatedAt }

func (r *TransportRequest) VehicleIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(r.vehicleIDs))
	copy(out, r.vehicleIDs)
	return out
}

// TransportMeanID is the single vehicle id, or all ids joined with ", ".
func (r *TransportRequest) TransportMeanID() string {
	ids := make([]string, len(r.vehicleIDs))
	for i, id := range r.vehicleIDs {
		ids[i] = id.String()
	}
	return strings.Join(ids, ", ")
}

// Complete marks the request fulfilled by vehicleIDs, in assignment order.
func (r *TransportRequest) Complete(vehicleIDs []kernel.UUID, at time.Time) error {
	if len(vehicleIDs) == 0 {
		return errs.NewValueIsRequiredError("vehicleIDs")
	}
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	next, err := r.status.Complete()
	if err != nil {
		return err
	}
	r.status = next
	r.vehicleIDs = append([]kernel.UUID(nil), vehicleIDs...)
	r.updatedAt = at.UTC()
	return nil
}

func (r *TransportRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *TransportRequest) setRoute(from, to kernel.Location) error {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return err
	}
	r.from = from
	r.to = to
	return nil
}

func (r *TransportRequest) setLoad(lc kernel.LoadClass, quantity int) error {
	var errList []error
	if lc == "" || lc == kernel.LoadClassEmpty {
		errList = append(errList, errs.NewValueIsInvalidError("loadType"))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	r.loadClass = lc
	r.quantity = quantity
	return nil
}

func (r *TransportRequest) setRequestedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("requestedAt")
	}
	return nil
}
