package request

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a transport request.
type Status int

const (
	Unknown Status = iota
	// Created is set when the request has been accepted but not yet fulfilled.
	Created
	// Completed is set once every assigned vehicle has delivered.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Completed: "COMPLETED",
	}
}

func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != Created && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return getStatusStrings()[Unknown]
}

func (s Status) Complete() (Status, error) {
	if s != Created {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}
	return Completed, nil
}
