package kernel

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
)

const referenceSeparator = ":"

// ErrMalformedReference is matched by every decoding failure.
var ErrMalformedReference = errors.New("malformed place reference")

// Reference is the opaque, URL safe identifier clients use for a place. It
// encodes "<Kind>:<uuid>" in base64.
type Reference string

// MalformedReferenceError carries the offending reference and the reason.
// It matches both ErrMalformedReference and errs.ErrValueIsInvalid.
type MalformedReferenceError struct {
	Reference string
	Reason    string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrMalformedReference, e.Reference, e.Reason)
}

func (e *MalformedReferenceError) Unwrap() []error {
	return []error{ErrMalformedReference, errs.ErrValueIsInvalid}
}

// EncodeReference is deterministic: the same kind and id always yield the same
// reference.
func EncodeReference(kind PlaceKind, id UUID) Reference {
	raw := string(kind) + referenceSeparator + id.String()
	return Reference(base64.URLEncoding.EncodeToString([]byte(raw)))
}

// DecodeReference never panics. References produced with the standard base64
// alphabet are accepted as well.
func DecodeReference(ref string) (PlaceKind, UUID, error) {
	malformed := func(reason string) (PlaceKind, UUID, error) {
		return "", UUID{}, &MalformedReferenceError{Reference: ref, Reason: reason}
	}

	if ref == "" {
		return malformed("empty reference")
	}
	raw, err := base64.URLEncoding.DecodeString(ref)
	if err != nil {
		if raw, err = base64.StdEncoding.DecodeString(ref); err != nil {
			return malformed("not base64")
		}
	}

	kindPart, idPart, found := strings.Cut(string(raw), referenceSeparator)
	if !found {
		return malformed("missing separator")
	}
	kind, err := ParsePlaceKind(kindPart)
	if err != nil {
		return malformed("unknown place kind")
	}
	if idPart == "" {
		return malformed("empty id")
	}
	id, err := ParseUUID(idPart)
	if err != nil {
		return malformed("invalid id")
	}
	return kind, id, nil
}

func (r Reference) String() string {
	return string(r)
}

// Decode is DecodeReference on r.
func (r Reference) Decode() (PlaceKind, UUID, error) {
	return DecodeReference(string(r))
}
