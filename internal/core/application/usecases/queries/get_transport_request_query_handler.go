package queries

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// GetTransportRequestQueryHandler loads a request through the repositories of
// a unit of work without opening a transaction.
type GetTransportRequestQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	tracer     trace.Tracer
}

func NewGetTransportRequestQueryHandler(uowFactory ports.UnitOfWorkFactory) GetTransportRequestQueryHandler {
	return GetTransportRequestQueryHandler{uowFactory: uowFactory, tracer: otel.Tracer("freight/queries")}
}

// Handle returns an errs.ObjectNotFoundError for an unknown id.
func (h GetTransportRequestQueryHandler) Handle(
	ctx context.Context,
	query GetTransportRequestQuery,
) (GetTransportRequestQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransportRequestQueryResponse{}, err
	}

	ctx, span := h.tracer.Start(ctx, "GetTransportRequest",
		trace.WithAttributes(attribute.String("request_id", query.ID().String())))
	defer span.End()

	resp, err := h.fetch(ctx, query.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

func (h GetTransportRequestQueryHandler) fetch(ctx context.Context, id kernel.UUID) (GetTransportRequestQueryResponse, error) {
	uow := h.uowFactory.Create()

	tr, err := uow.TransportRequestRepository().Get(ctx, id)
	if err != nil {
		return GetTransportRequestQueryResponse{}, err
	}

	from, err := h.describe(ctx, uow, tr.From())
	if err != nil {
		return GetTransportRequestQueryResponse{}, err
	}
	to, err := h.describe(ctx, uow, tr.To())
	if err != nil {
		return GetTransportRequestQueryResponse{}, err
	}

	return GetTransportRequestQueryResponse{
		ID:              tr.ID(),
		From:            from,
		To:              to,
		LoadClass:       tr.LoadClass(),
		Quantity:        tr.Quantity(),
		Status:          tr.Status().String(),
		RequestedAt:     tr.RequestedAt(),
		UpdatedAt:       tr.UpdatedAt(),
		VehicleIDs:      tr.VehicleIDs(),
		TransportMeanID: tr.TransportMeanID(),
	}, nil
}

func (h GetTransportRequestQueryHandler) describe(
	ctx context.Context,
	uow ports.UnitOfWork,
	loc kernel.Location,
) (place.View, error) {
	p, err := uow.PlaceRepository().Get(ctx, loc.PlaceID())
	if err != nil {
		return place.View{}, err
	}
	return services.DescribePlace(ctx, uow.GeoRepository(), p)
}
