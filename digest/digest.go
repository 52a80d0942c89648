// Package digest defines the digest-provider capability consumed by
// elementmap and accumulator: a callable taking bytes and returning a
// fixed-width digest of at least PrimeBits bits. A string identifier
// from the SHA-2 (and, for callers that want it, SHA-3) family
// resolves to a Provider at construction; callers may also supply
// their own Provider.
package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/luxfi/rsa-acc/rsaerr"
)

// Provider is a collision-resistant digest capability: Sum returns a
// fixed-width byte string for any input. Implementations must be safe
// for concurrent use by multiple goroutines, since a Provider may be
// shared across an Accumulator and any Updates derived from it.
type Provider interface {
	// Sum returns the digest of data. The returned slice's length in
	// bits must be >= the PrimeBits the caller configured: accumulator
	// construction checks BitLen against Config.PrimeBits and rejects
	// the mismatch rather than silently truncating entropy out of the
	// element-prime search.
	Sum(data []byte) []byte

	// BitLen reports the width, in bits, of values returned by Sum.
	BitLen() int
}

type fixedProvider struct {
	bitLen int
	sum    func([]byte) []byte
}

func (f fixedProvider) Sum(data []byte) []byte { return f.sum(data) }
func (f fixedProvider) BitLen() int            { return f.bitLen }

// Resolve turns a digest identifier into a Provider. Supported
// identifiers: "sha256", "sha384", "sha512", "sha3-256", "sha3-512".
// "sha256" is the recommended default and matches the reference
// implementation's wire format.
func Resolve(id string) (Provider, error) {
	switch id {
	case "sha256":
		return fixedProvider{256, func(b []byte) []byte { s := sha256.Sum256(b); return s[:] }}, nil
	case "sha384":
		return fixedProvider{384, func(b []byte) []byte { s := sha512.Sum384(b); return s[:] }}, nil
	case "sha512":
		return fixedProvider{512, func(b []byte) []byte { s := sha512.Sum512(b); return s[:] }}, nil
	case "sha3-256":
		return fixedProvider{256, func(b []byte) []byte { s := sha3.Sum256(b); return s[:] }}, nil
	case "sha3-512":
		return fixedProvider{512, func(b []byte) []byte { s := sha3.Sum512(b); return s[:] }}, nil
	default:
		return nil, fmt.Errorf("digest: unknown identifier %q: %w", id, rsaerr.ErrBadArgument)
	}
}
