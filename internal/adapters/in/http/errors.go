package http

import (
	"errors"
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/place"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

var badRequest = []error{
	kernel.ErrMalformedReference,
	commands.ErrUnknownPlace,
	services.ErrNoCompatibleVehicle,
	services.ErrInsufficientCapacity,
	place.ErrInsufficientStorage,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
}

// statusOf maps an error onto the HTTP status of the response and the message
// shown to the client. Unexpected errors and internal faults are not echoed
// back, even when they carry a validation error.
func statusOf(err error) (int, string) {
	if errors.Is(err, errs.ErrInternalFault) {
		return http.StatusInternalServerError, "internal error"
	}
	if errors.Is(err, errs.ErrTransientFailure) {
		return http.StatusServiceUnavailable, "temporarily unavailable, retry the request"
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest, err.Error()
		}
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound, err.Error()
	}
	return http.StatusInternalServerError, "internal error"
}
