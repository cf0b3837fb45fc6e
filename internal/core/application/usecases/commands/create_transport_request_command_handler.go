package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/domain/model/request"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrUnknownPlace is matched when a well formed reference names no stored
// place.
var ErrUnknownPlace = errors.New("unknown place")

type UnknownPlaceError struct {
	Reference string
}

func (e *UnknownPlaceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownPlace, e.Reference)
}

func (e *UnknownPlaceError) Unwrap() error {
	return ErrUnknownPlace
}

// TransportRequestResult describes a completed fulfillment.
type TransportRequestResult struct {
	ID          kernel.UUID
	From        place.View
	To          place.View
	LoadClass   kernel.LoadClass
	Quantity    int
	Status      request.Status
	RequestedAt time.Time
	UpdatedAt   time.Time
	VehicleIDs  []kernel.UUID
	// TransportMeanID is the single vehicle id or all ids joined with ", ".
	TransportMeanID string
	Movements       []services.Movement
}

// CreateTransportRequestCommandHandler runs the fulfillment engine for one
// request: it locks both places, resolves eligible vehicle types, plans,
// executes and records the request inside a single unit of work. Runs that
// fail with errs.ErrTransientFailure are retried from scratch.
type CreateTransportRequestCommandHandler struct {
	uowFactory UoWFactory
	views      ports.PlaceViewCache
	retry      RetryPolicy
	logger     *slog.Logger
	tracer     trace.Tracer

	resolver services.CompatibilityResolver
	planner  services.AllocationPlanner
	executor services.FulfillmentExecutor
}

// NewCreateTransportRequestCommandHandler creates the handler. views may be
// nil, in which case place views are always built from the store.
func NewCreateTransportRequestCommandHandler(
	uowFactory UoWFactory,
	views ports.PlaceViewCache,
	retry RetryPolicy,
	logger *slog.Logger,
) CreateTransportRequestCommandHandler {
	return CreateTransportRequestCommandHandler{
		uowFactory: uowFactory,
		views:      views,
		retry:      retry,
		logger:     logger.With("component", "CreateTransportRequestCommandHandler"),
		tracer:     otel.Tracer("freight/commands"),
		resolver:   services.NewCompatibilityResolver(),
		planner:    services.NewAllocationPlanner(),
		executor:   services.NewFulfillmentExecutor(),
	}
}

func (h CreateTransportRequestCommandHandler) Handle(
	ctx context.Context,
	command CreateTransportRequestCommand,
) (TransportRequestResult, error) {
	if err := command.Validate(); err != nil {
		return TransportRequestResult{}, err
	}

	ctx, span := h.tracer.Start(ctx, "CreateTransportRequest", trace.WithAttributes(
		attribute.String("freight.from.kind", command.From().Kind.String()),
		attribute.String("freight.to.kind", command.To().Kind.String()),
		attribute.String("freight.load_class", command.LoadClass().String()),
		attribute.Int("freight.quantity", command.Quantity()),
	))
	defer span.End()

	requestedAt := command.RequestedAt()
	if requestedAt.IsZero() {
		requestedAt = time.Now()
	}

	started := time.Now()
	attempts := 0
	var result TransportRequestResult

	err := backoff.Retry(func() error {
		attempts++
		res, err := h.attempt(ctx, command, requestedAt)
		if err == nil {
			result = res
			return nil
		}
		if errors.Is(err, errs.ErrTransientFailure) {
			h.logger.WarnContext(ctx, "transient failure, retrying fulfillment",
				"attempt", attempts, "error", err)
			return err
		}
		return backoff.Permanent(err)
	}, h.retry.backOff(ctx))

	span.SetAttributes(attribute.Int("freight.attempts", attempts))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, errs.ErrTransientFailure) {
			err = errs.NewTransientFailureError("fulfill transport request", err)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.InfoContext(ctx, "transport request rejected",
			"from", command.From().Reference,
			"to", command.To().Reference,
			"loadType", command.LoadClass(),
			"quantity", command.Quantity(),
			"attempts", attempts,
			"error", err)
		return TransportRequestResult{}, err
	}

	h.logMovements(ctx, result.Movements)
	h.logger.InfoContext(ctx, "transport request completed",
		"id", result.ID.String(),
		"fromCity", result.From.City,
		"toCity", result.To.City,
		"loadType", result.LoadClass,
		"quantity", result.Quantity,
		"vehicles", len(result.VehicleIDs),
		"attempts", attempts,
		"duration", time.Since(started))
	return result, nil
}

func (h CreateTransportRequestCommandHandler) attempt(
	ctx context.Context,
	command CreateTransportRequestCommand,
	requestedAt time.Time,
) (TransportRequestResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransportRequestResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placeRepo := uow.PlaceRepository()
	vehicleRepo := uow.VehicleRepository()

	origin, destination, err := lockPlaces(ctx, placeRepo, command.From(), command.To())
	if err != nil {
		return TransportRequestResult{}, err
	}

	types, err := h.resolver.Resolve(origin.Kind(), destination.Kind(), command.LoadClass())
	if err != nil {
		return TransportRequestResult{}, err
	}

	journal := &services.Journal{}
	plan, err := h.planner.Plan(ctx, vehicleRepo, services.Allocation{
		Origin:    origin.Location(),
		LoadClass: command.LoadClass(),
		Quantity:  command.Quantity(),
		Types:     types,
	}, journal)
	if err != nil {
		return TransportRequestResult{}, err
	}

	if err = h.executor.Execute(ctx, placeRepo, vehicleRepo, origin, destination,
		command.LoadClass(), command.Quantity(), plan, journal); err != nil {
		return TransportRequestResult{}, err
	}

	tr, err := request.NewTransportRequest(kernel.NewUUID(), origin.Location(), destination.Location(),
		command.LoadClass(), command.Quantity(), requestedAt)
	if err != nil {
		return TransportRequestResult{}, err
	}
	if err = tr.Complete(plan.VehicleIDs(), time.Now()); err != nil {
		return TransportRequestResult{}, err
	}
	if err = uow.TransportRequestRepository().Add(ctx, tr); err != nil {
		return TransportRequestResult{}, err
	}

	geoRepo := uow.GeoRepository()
	fromView, err := h.describe(ctx, geoRepo, origin)
	if err != nil {
		return TransportRequestResult{}, err
	}
	toView, err := h.describe(ctx, geoRepo, destination)
	if err != nil {
		return TransportRequestResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransportRequestResult{}, err
	}

	return TransportRequestResult{
		ID:              tr.ID(),
		From:            fromView,
		To:              toView,
		LoadClass:       tr.LoadClass(),
		Quantity:        tr.Quantity(),
		Status:          tr.Status(),
		RequestedAt:     tr.RequestedAt(),
		UpdatedAt:       tr.UpdatedAt(),
		VehicleIDs:      tr.VehicleIDs(),
		TransportMeanID: tr.TransportMeanID(),
		Movements:       journal.Entries(),
	}, nil
}

// lockPlaces takes the row locks of both places in id order, so two runs over
// the same pair of places cannot deadlock on each other.
func lockPlaces(
	ctx context.Context,
	repo ports.PlaceRepository,
	from, to PlaceRef,
) (*place.Place, *place.Place, error) {
	if from.ID.IsEqual(to.ID) {
		p, err := lockPlace(ctx, repo, from)
		if err != nil {
			return nil, nil, err
		}
		if p.Kind() != to.Kind {
			return nil, nil, &UnknownPlaceError{Reference: to.Reference}
		}
		return p, p, nil
	}

	first, second := from, to
	if first.ID.Compare(second.ID) > 0 {
		first, second = second, first
	}
	a, err := lockPlace(ctx, repo, first)
	if err != nil {
		return nil, nil, err
	}
	b, err := lockPlace(ctx, repo, second)
	if err != nil {
		return nil, nil, err
	}
	if a.ID().IsEqual(from.ID) {
		return a, b, nil
	}
	return b, a, nil
}

func lockPlace(ctx context.Context, repo ports.PlaceRepository, ref PlaceRef) (*place.Place, error) {
	p, err := repo.GetForUpdate(ctx, ref.ID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, &UnknownPlaceError{Reference: ref.Reference}
	}
	if err != nil {
		return nil, err
	}
	// A reference whose kind disagrees with the stored place names nothing.
	if p.Kind() != ref.Kind {
		return nil, &UnknownPlaceError{Reference: ref.Reference}
	}
	return p, nil
}

func (h CreateTransportRequestCommandHandler) describe(
	ctx context.Context,
	geoRepo ports.GeoRepository,
	p *place.Place,
) (place.View, error) {
	if h.views != nil {
		view, ok, err := h.views.Get(ctx, p.ID())
		if err != nil {
			h.logger.WarnContext(ctx, "place view cache read failed", "place", p.ID().String(), "error", err)
		}
		if ok {
			return view, nil
		}
	}

	view, err := services.DescribePlace(ctx, geoRepo, p)
	if err != nil {
		return place.View{}, err
	}

	if h.views != nil {
		if err = h.views.Set(ctx, p.ID(), view); err != nil {
			h.logger.WarnContext(ctx, "place view cache write failed", "place", p.ID().String(), "error", err)
		}
	}
	return view, nil
}

func (h CreateTransportRequestCommandHandler) logMovements(ctx context.Context, movements []services.Movement) {
	for _, m := range movements {
		switch m.Kind {
		case services.MovementRelocate:
			h.logger.InfoContext(ctx, "empty move",
				"vehicle", m.VehicleID.String(), "from", m.From.String(), "to", m.To.String())
		case services.MovementMove:
			h.logger.InfoContext(ctx, "vehicle moved",
				"vehicle", m.VehicleID.String(), "from", m.From.String(), "to", m.To.String(),
				"loadType", m.LoadClass, "quantity", m.Quantity)
		case services.MovementLoad, services.MovementDeliver, services.MovementUnload:
			h.logger.DebugContext(ctx, "vehicle "+string(m.Kind),
				"vehicle", m.VehicleID.String(), "loadType", m.LoadClass, "quantity", m.Quantity)
		}
	}
}
