package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/fleet"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/domain/model/request"
	"freight/internal/core/domain/services"
	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreator struct{ mock.Mock }

func (m *mockCreator) Handle(
	ctx context.Context, cmd commands.CreateTransportRequestCommand,
) (commands.TransportRequestResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.TransportRequestResult), args.Error(1)
}

type mockRequestReader struct{ mock.Mock }

func (m *mockRequestReader) Handle(
	ctx context.Context, q queries.GetTransportRequestQuery,
) (queries.GetTransportRequestQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.GetTransportRequestQueryResponse), args.Error(1)
}

type mockPlacesReader struct{ mock.Mock }

func (m *mockPlacesReader) Handle(ctx context.Context, q queries.GetPlacesQuery) ([]place.View, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]place.View)
	return views, args.Error(1)
}

type mockFleetReader struct{ mock.Mock }

func (m *mockFleetReader) Handle(ctx context.Context, q queries.GetFleetStatusQuery) ([]queries.FleetTypeStatus, error) {
	args := m.Called(ctx, q)
	statuses, _ := args.Get(0).([]queries.FleetTypeStatus)
	return statuses, args.Error(1)
}

type fixture struct {
	echo     *echo.Echo
	creator  *mockCreator
	requests *mockRequestReader
	places   *mockPlacesReader
	fleet    *mockFleetReader

	fromRef string
	toRef   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		echo:     echo.New(),
		creator:  new(mockCreator),
		requests: new(mockRequestReader),
		places:   new(mockPlacesReader),
		fleet:    new(mockFleetReader),
		fromRef:  string(kernel.EncodeReference(kernel.PlaceKindTrainStation, kernel.NewUUID())),
		toRef:    string(kernel.EncodeReference(kernel.PlaceKindTrainStation, kernel.NewUUID())),
	}

	spec, err := servers.GetSwagger()
	require.NoError(t, err)
	validator, err := httpadapter.RequestValidator(spec)
	require.NoError(t, err)
	f.echo.Use(validator)

	logger := slog.New(slog.DiscardHandler)
	servers.RegisterHandlers(f.echo, httpadapter.NewServer(f.creator, f.requests, f.places, f.fleet, logger))

	t.Cleanup(func() {
		f.creator.AssertExpectations(t)
		f.requests.AssertExpectations(t)
		f.places.AssertExpectations(t)
		f.fleet.AssertExpectations(t)
	})
	return f
}

func (f *fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) body(loadType string, quantity int) string {
	raw, _ := json.Marshal(map[string]any{
		"from":     map[string]string{"id": f.fromRef},
		"to":       map[string]string{"id": f.toRef},
		"loadType": loadType,
		"quantity": quantity,
	})
	return string(raw)
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

func TestCreateTransportRequest_Created(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	vehicles := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	result := commands.TransportRequestResult{
		ID:              kernel.NewUUID(),
		From:            place.View{Reference: kernel.Reference(f.fromRef), Street: "Gare de Lyon", City: "Paris", Nation: "France"},
		To:              place.View{Reference: kernel.Reference(f.toRef), Street: "Part-Dieu", City: "Lyon", Nation: "France"},
		LoadClass:       kernel.LoadClassStandard,
		Quantity:        1500,
		Status:          request.Completed,
		RequestedAt:     at,
		UpdatedAt:       at,
		VehicleIDs:      vehicles,
		TransportMeanID: vehicles[0].String() + ", " + vehicles[1].String(),
	}
	f.creator.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateTransportRequestCommand) bool {
		return cmd.LoadClass() == kernel.LoadClassStandard && cmd.Quantity() == 1500 &&
			string(cmd.From().Reference) == f.fromRef
	})).Return(result, nil).Once()

	rec := f.do(http.MethodPost, "/v1/transport-requests", f.body("standard", 1500))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got servers.TransportRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, result.ID.Value(), got.Id)
	assert.Equal(t, servers.COMPLETED, got.Status)
	assert.Equal(t, result.TransportMeanID, got.TransportMeanId)
	assert.Equal(t, "Paris", got.From.City)
	assert.Equal(t, f.toRef, got.To.Id)
	assert.Equal(t, "STANDARD", got.LoadType)
}

func TestCreateTransportRequest_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unknown place", &commands.UnknownPlaceError{Reference: "x"}, http.StatusBadRequest},
		{"no compatible vehicle", services.ErrNoCompatibleVehicle, http.StatusBadRequest},
		{"insufficient capacity", &services.InsufficientCapacityError{Remaining: 10}, http.StatusBadRequest},
		{"insufficient storage", &place.InsufficientStorageError{LoadClass: "PACKAGE", Requested: 5}, http.StatusBadRequest},
		{"transient", errs.NewTransientFailureError("commit", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError},
		{
			"undecodable stored vehicle",
			errs.NewInternalFaultError("decode vehicle",
				errs.NewValueIsInvalidErrorWithCause("vehicleType", errors.New("disk on fire"))),
			http.StatusInternalServerError,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.creator.On("Handle", mock.Anything, mock.Anything).
				Return(commands.TransportRequestResult{}, tc.err).Once()

			rec := f.do(http.MethodPost, "/v1/transport-requests", f.body("PACKAGE", 5))

			assert.Equal(t, tc.status, rec.Code)
			msg := errorOf(t, rec)
			assert.NotEmpty(t, msg)
			if tc.status == http.StatusInternalServerError {
				assert.NotContains(t, msg, "disk on fire")
			}
		})
	}
}

func TestCreateTransportRequest_MalformedReferenceNeverReachesHandler(t *testing.T) {
	f := newFixture(t)
	body := `{"from":{"id":"%%%"},"to":{"id":"` + f.toRef + `"},"loadType":"PACKAGE","quantity":5}`

	rec := f.do(http.MethodPost, "/v1/transport-requests", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorOf(t, rec), "malformed place reference")
	f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateTransportRequest_SchemaValidation(t *testing.T) {
	f := newFixture(t)

	for _, body := range []string{
		`{"from":{"id":"a"},"to":{"id":"b"},"loadType":"PACKAGE","quantity":0}`,
		`{"from":{"id":"a"},"loadType":"PACKAGE","quantity":3}`,
		`not json`,
	} {
		rec := f.do(http.MethodPost, "/v1/transport-requests", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	f.creator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateTransportRequest_EmptyLoadType(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/v1/transport-requests", f.body("EMPTY", 5))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTransportRequest(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.requests.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetTransportRequestQuery) bool {
		return q.ID().IsEqual(id)
	})).Return(queries.GetTransportRequestQueryResponse{
		ID:              id,
		LoadClass:       kernel.LoadClassPackage,
		Quantity:        3,
		Status:          "COMPLETED",
		TransportMeanID: "v1",
	}, nil).Once()

	rec := f.do(http.MethodGet, "/v1/transport-requests/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got servers.TransportRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id.Value(), got.Id)
	assert.Equal(t, "v1", got.TransportMeanId)
}

func TestGetTransportRequest_NotFound(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	f.requests.On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetTransportRequestQueryResponse{}, errs.NewObjectNotFoundError("transport request", id.String())).Once()

	rec := f.do(http.MethodGet, "/v1/transport-requests/"+id.String(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTransportRequest_InvalidID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/transport-requests/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPlaces(t *testing.T) {
	f := newFixture(t)
	views := []place.View{{Reference: "ref-1", Street: "Aeroport", City: "Lyon, Paris", Nation: "France"}}
	f.places.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetPlacesQuery) bool {
		return q.CityName() == "par" && q.Limit() == 5
	})).Return(views, nil).Once()

	rec := f.do(http.MethodGet, "/v1/places?cityName=par&limit=5", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got []servers.PlaceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []servers.PlaceView{{Id: "ref-1", Street: "Aeroport", City: "Lyon, Paris", Nation: "France"}}, got)
}

func TestGetPlaces_DefaultsAndEmptyResult(t *testing.T) {
	f := newFixture(t)
	f.places.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetPlacesQuery) bool {
		return q.CityName() == "" && q.Limit() == queries.DefaultPlacesLimit
	})).Return([]place.View{}, nil).Once()

	rec := f.do(http.MethodGet, "/v1/places", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetPlaces_InvalidLimit(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/places?limit=0", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetFleetStatus(t *testing.T) {
	f := newFixture(t)
	f.fleet.On("Handle", mock.Anything, mock.Anything).Return([]queries.FleetTypeStatus{
		{Type: fleet.TypeTrain, Idle: 2, Busy: 1, TotalCapacity: 104400},
	}, nil).Once()

	rec := f.do(http.MethodGet, "/v1/fleet/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"type":"Train","idle":2,"busy":1,"totalCapacity":104400}]`, rec.Body.String())
}

func TestUndescribedPathsPassThrough(t *testing.T) {
	f := newFixture(t)
	f.echo.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "Healthy") })

	rec := f.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}
