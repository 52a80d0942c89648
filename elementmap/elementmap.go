// Package elementmap implements the deterministic mapping from
// (digest, element) pairs to (prime, nonce) pairs described in spec
// section 4.2: the prime representative of an element, used by
// Accumulator and Update as the exponent that absorbs or expels that
// element from the accumulation.
package elementmap

import (
	"fmt"
	"math/big"

	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/rsaerr"
)

var two = big.NewInt(2)

// Result is the outcome of mapping an element to a prime
// representative: Y is the prime itself, Nonce is Y minus the raw
// digest residue, recorded on a Witness so a verifier can recompute Y
// as H(x) + Nonce without repeating the (variable-time) prime search.
type Result struct {
	Y     *big.Int
	Nonce *big.Int
}

// Map computes the (prime, nonce) pair for element x under digest
// provider p, searching within [0, 2^primeBits) and testing each
// candidate with mrRounds rounds of Miller-Rabin (spec section 4.2's
// "24 rounds", made configurable via config.Config.MRRounds).
func Map(p digest.Provider, x []byte, primeBits, mrRounds int) (*Result, error) {
	d0 := new(big.Int).SetBytes(p.Sum(x))
	limit := new(big.Int).Lsh(big.NewInt(1), uint(primeBits))
	d1 := new(big.Int).Mod(d0, limit)

	candidate := new(big.Int).Set(d1)
	if d1.Bit(0) == 0 {
		// d1 is even: the reference tests d1+1 first, then steps by 2.
		candidate.Add(candidate, big.NewInt(1))
	}
	// If d1 is odd, the reference tests d1 itself first, then steps
	// by 2 — same loop, different starting point.

	for !candidate.ProbablyPrime(mrRounds) {
		candidate.Add(candidate, two)
	}

	if candidate.Cmp(limit) >= 0 {
		return nil, fmt.Errorf("elementmap: prime search wrapped past 2^%d: %w", primeBits, rsaerr.ErrInternalInvariant)
	}

	nonce := new(big.Int).Sub(candidate, d1)
	return &Result{Y: candidate, Nonce: nonce}, nil
}

// Recover recomputes y = H(x) + nonce for a verifier that already
// holds nonce from a Witness, avoiding a repeat of the variable-time
// prime search in Map.
func Recover(p digest.Provider, x []byte, nonce *big.Int, primeBits int) *big.Int {
	d0 := new(big.Int).SetBytes(p.Sum(x))
	limit := new(big.Int).Lsh(big.NewInt(1), uint(primeBits))
	d1 := new(big.Int).Mod(d0, limit)
	return new(big.Int).Add(d1, nonce)
}
