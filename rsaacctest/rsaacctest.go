// Package rsaacctest provides fast, deterministic fixtures for tests
// that exercise accumulator and update semantics without paying for a
// cryptographically-sized modulus on every run.
package rsaacctest

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"testing"

	"github.com/luxfi/rsa-acc/config"
	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/primegen"
)

// DeterministicReader returns a reproducible entropy stream seeded
// with seed. It is NOT cryptographically secure and must never be
// used outside test code.
func DeterministicReader(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}

// FixedConfig returns config.FastTest(), the small/quick parameter
// set used throughout this module's own test suite.
func FixedConfig() *config.Config {
	return config.FastTest()
}

// Digest resolves the reference SHA-256 digest provider, failing the
// test on error (which should be unreachable for a known-good id).
func Digest(t testing.TB) digest.Provider {
	t.Helper()
	p, err := digest.Resolve("sha256")
	if err != nil {
		t.Fatalf("rsaacctest: resolving digest: %v", err)
	}
	return p
}

var (
	fixtureOnce   sync.Once
	fixturePrimes *primegen.Primes
)

// FixedPrimes returns a small, fast, fixture Primes pair shared across
// the calling test binary, generated once from a deterministic seed —
// "primes p, q supplied from a fixture" in spec section 8's end-to-end
// scenarios.
func FixedPrimes(t testing.TB) *primegen.Primes {
	t.Helper()
	fixtureOnce.Do(func() {
		pr, err := primegen.Generate(context.Background(), FixedConfig(), DeterministicReader(1), nil)
		if err != nil {
			t.Fatalf("rsaacctest: generating fixture primes: %v", err)
		}
		fixturePrimes = pr
	})
	return fixturePrimes
}
