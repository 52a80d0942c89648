// Package rsaerr defines the sentinel errors returned by the
// accumulator, update, primegen and elementmap packages.
package rsaerr

import "errors"

var (
	// ErrWitnessInvalid is returned when Verify would return false for
	// the witness passed to Delete.
	ErrWitnessInvalid = errors.New("rsaacc: witness invalid")

	// ErrSecretRequired is returned when Delete or Prove is invoked on
	// a public-verifier accumulator, or when Add is invoked on one at
	// all.
	ErrSecretRequired = errors.New("rsaacc: secret required")

	// ErrUpdateMismatch is returned when Update.Apply is invoked with
	// a witness whose prime is not coprime with the batch's deletions
	// product (its element was deleted in the batch). Apply does not
	// detect a witness computed against a different z.
	ErrUpdateMismatch = errors.New("rsaacc: update snapshot mismatch")

	// ErrInvalidDivision is returned when UndoAdd/UndoDelete is
	// invoked against a prime not previously absorbed.
	ErrInvalidDivision = errors.New("rsaacc: prime not previously absorbed")

	// ErrBadArgument is returned for type or range violations on
	// public inputs.
	ErrBadArgument = errors.New("rsaacc: invalid argument")

	// ErrInternalInvariant is returned when an internal invariant is
	// violated, e.g. prime search wrapping around 2^PrimeBits or a
	// Primes pair whose modulus does not have the configured
	// bit-length.
	ErrInternalInvariant = errors.New("rsaacc: internal invariant violated")
)
