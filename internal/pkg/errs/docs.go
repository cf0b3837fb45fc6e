// Package errs holds the error categories shared by the domain, the use cases
// and the adapters of the freight service.
//
// Categories:
//   - ValueIsRequiredError: a mandatory value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a value falls outside its bounds
//   - ObjectNotFoundError: a lookup by id found nothing
//   - TransientFailureError: store contention, timeouts and lost connections
//
// Every category has a sentinel (ErrValueIsRequired, ...) matched with
// errors.Is, a struct carrying the details, and constructors with and without
// a cause. Unwrap exposes the sentinel and the cause.
//
// TransientFailureError is the only retryable category: the operation that
// produced it committed nothing, so repeating it is safe.
package errs
