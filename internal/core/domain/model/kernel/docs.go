// Package kernel provides the value objects shared by every aggregate of the
// freight domain.
//
// The package includes:
//   - UUID: identifier of every stored record
//   - LoadClass: normalized load category (PACKAGE, STANDARD, WIDE_LOAD) plus the EMPTY marker
//   - PlaceKind: the closed set of place variants
//   - Location: a place id and kind, used as a vehicle position
//   - Reference: the opaque base64 place reference exchanged with clients
//
// All types are immutable and safe to share between goroutines.
package kernel
