// Package http exposes the fulfillment engine over the REST API described by
// internal/generated/servers.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	TransportRequestCreator interface {
		Handle(ctx context.Context, cmd commands.CreateTransportRequestCommand) (commands.TransportRequestResult, error)
	}

	TransportRequestReader interface {
		Handle(ctx context.Context, query queries.GetTransportRequestQuery) (queries.GetTransportRequestQueryResponse, error)
	}

	PlacesReader interface {
		Handle(ctx context.Context, query queries.GetPlacesQuery) ([]place.View, error)
	}

	FleetStatusReader interface {
		Handle(ctx context.Context, query queries.GetFleetStatusQuery) ([]queries.FleetTypeStatus, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createTransportRequest TransportRequestCreator

	getTransportRequest TransportRequestReader
	getPlaces           PlacesReader
	getFleetStatus      FleetStatusReader

	logger *slog.Logger
}

func NewServer(
	createTransportRequest TransportRequestCreator,
	getTransportRequest TransportRequestReader,
	getPlaces PlacesReader,
	getFleetStatus FleetStatusReader,
	logger *slog.Logger,
) *Server {
	return &Server{
		createTransportRequest: createTransportRequest,
		getTransportRequest:    getTransportRequest,
		getPlaces:              getPlaces,
		getFleetStatus:         getFleetStatus,
		logger:                 logger.With("component", "http.Server"),
	}
}

// CreateTransportRequest handles POST /v1/transport-requests.
func (s *Server) CreateTransportRequest(ctx echo.Context) error {
	var body servers.CreateTransportRequestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "invalid request body"})
	}

	var requestedAt time.Time
	if body.RequestedAt != nil {
		requestedAt = *body.RequestedAt
	}

	cmd, err := commands.NewCreateTransportRequestCommand(
		body.From.Id, body.To.Id, body.LoadType, body.Quantity, requestedAt)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.createTransportRequest.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.TransportRequest{
		Id:              result.ID.Value(),
		From:            toPlaceView(result.From),
		To:              toPlaceView(result.To),
		LoadType:        string(result.LoadClass),
		Quantity:        result.Quantity,
		Status:          servers.TransportRequestStatus(result.Status.String()),
		RequestedAt:     result.RequestedAt,
		UpdatedAt:       result.UpdatedAt,
		TransportMeanId: result.TransportMeanID,
	})
}

// GetTransportRequest handles GET /v1/transport-requests/{id}.
func (s *Server) GetTransportRequest(ctx echo.Context, id openapi_types.UUID) error {
	requestID, err := kernel.UUIDOf(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetTransportRequestQuery(requestID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getTransportRequest.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TransportRequest{
		Id:              resp.ID.Value(),
		From:            toPlaceView(resp.From),
		To:              toPlaceView(resp.To),
		LoadType:        string(resp.LoadClass),
		Quantity:        resp.Quantity,
		Status:          servers.TransportRequestStatus(resp.Status),
		RequestedAt:     resp.RequestedAt,
		UpdatedAt:       resp.UpdatedAt,
		TransportMeanId: resp.TransportMeanID,
	})
}

// GetPlaces handles GET /v1/places.
func (s *Server) GetPlaces(ctx echo.Context, params servers.GetPlacesParams) error {
	cityName := ""
	if params.CityName != nil {
		cityName = *params.CityName
	}
	limit := queries.DefaultPlacesLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetPlacesQuery(cityName, limit)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.getPlaces.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.PlaceView, len(views))
	for i, v := range views {
		response[i] = toPlaceView(v)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetFleetStatus handles GET /v1/fleet/status.
func (s *Server) GetFleetStatus(ctx echo.Context) error {
	statuses, err := s.getFleetStatus.Handle(ctx.Request().Context(), queries.NewGetFleetStatusQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.FleetTypeStatus, len(statuses))
	for i, st := range statuses {
		response[i] = servers.FleetTypeStatus{
			Type:          string(st.Type),
			Idle:          st.Idle,
			Busy:          st.Busy,
			TotalCapacity: st.TotalCapacity,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"status", status,
			"error", err)
	}
	return ctx.JSON(status, servers.Error{Error: message})
}

func toPlaceView(v place.View) servers.PlaceView {
	return servers.PlaceView{
		Id:     string(v.Reference),
		Street: v.Street,
		City:   v.City,
		Nation: v.Nation,
	}
}
