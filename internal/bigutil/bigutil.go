// Package bigutil collects the small big.Int helpers shared by
// primegen, elementmap, accumulator and update. None of it is
// accumulator-specific; it exists so those packages don't each
// reimplement modular inverse and bit-length checks.
package bigutil

import (
	"fmt"
	"math/big"

	"github.com/luxfi/rsa-acc/rsaerr"
)

// ModInv returns y^-1 mod m. Requires gcd(y, m) == 1.
func ModInv(y, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(y, m)
	if inv == nil {
		return nil, fmt.Errorf("bigutil: %d has no inverse mod %d: %w", y, m, rsaerr.ErrInternalInvariant)
	}
	return inv, nil
}

// ModPow returns base^exp mod m for non-negative exp and positive m.
func ModPow(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// BitLen reports the bit-length of n, matching big.Int.BitLen's
// convention that BitLen(0) == 0.
func BitLen(n *big.Int) int {
	return n.BitLen()
}

// ExtGCD returns (g, a, b) such that a*x + b*y == g == gcd(x, y).
func ExtGCD(x, y *big.Int) (g, a, b *big.Int) {
	g, a, b = new(big.Int), new(big.Int), new(big.Int)
	g.GCD(a, b, x, y)
	return g, a, b
}

// DivExact returns a/b if b divides a exactly, and ok == false
// otherwise. Used by Update's undo operations where division must be
// exact or the caller has misused the API.
func DivExact(a, b *big.Int) (q *big.Int, ok bool) {
	if b.Sign() == 0 {
		return nil, false
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}
