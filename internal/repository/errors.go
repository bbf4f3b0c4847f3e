// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. Benign
// outcomes (unknown city, empty result) are not errors: queries return
// empty slices. Anything else propagates untouched as a storage fault —
// the repository layer never retries.
package repository

import "errors"

// ErrSeatConflict is returned when a booking batch includes a seat that is
// no longer available. The whole batch fails; no partial writes are kept.
// Handlers should translate this into an HTTP 409 response.
var ErrSeatConflict = errors.New("seat no longer available")

// ErrEmailExists is returned when registration finds the email already
// taken. This is a benign "already exists" outcome, not a storage fault.
var ErrEmailExists = errors.New("email already exists")
