// Package accumulator implements the RSA cryptographic accumulator:
// a constant-size commitment to a dynamic multiset of byte-string
// elements, held either by a trusted holder (who controls the RSA
// modulus's factorisation and can add or delete elements) or by a
// public verifier (who holds only the modulus and current
// accumulation and can verify, but not mutate).
package accumulator

import (
	"fmt"
	"math/big"

	"github.com/luxfi/rsa-acc/config"
	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/elementmap"
	"github.com/luxfi/rsa-acc/internal/bigutil"
	"github.com/luxfi/rsa-acc/log"
	"github.com/luxfi/rsa-acc/metrics"
	"github.com/luxfi/rsa-acc/primegen"
	"github.com/luxfi/rsa-acc/rsaerr"
)

// Witness proves that element X was, at some point, absorbed into an
// Accumulator's accumulation, and (if W is current) that it still is.
// Witnesses are immutable values: refreshing one through an Update
// produces a new Witness rather than mutating this one.
type Witness struct {
	X     []byte
	Nonce *big.Int
	W     *big.Int
}

// Secret is the holder-only private state of an Accumulator: the
// factorisation of n and the corresponding private exponent modulus
// d = (p-1)(q-1).
type Secret struct {
	Primes *primegen.Primes
	D      *big.Int
}

// Accumulator holds (digest provider, modulus n, optional secret,
// accumulation z). Concurrent calls against the same Accumulator must
// be externally serialised by the caller (spec section 5) — none of
// this package's methods take a lock.
type Accumulator struct {
	cfg      *config.Config
	provider digest.Provider
	n        *big.Int
	secret   *Secret
	z        *big.Int
	logger   log.Logger
	metrics  *metrics.Metrics
}

// NewHolder constructs a trusted Accumulator from a freshly generated
// (or previously generated and retained) Primes pair. logger and m
// may be nil.
func NewHolder(cfg *config.Config, provider digest.Provider, primes *primegen.Primes, logger log.Logger, m *metrics.Metrics) (*Accumulator, error) {
	if cfg == nil || provider == nil || primes == nil {
		return nil, fmt.Errorf("accumulator: nil argument: %w", rsaerr.ErrBadArgument)
	}
	if provider.BitLen() < cfg.PrimeBits {
		return nil, fmt.Errorf("accumulator: digest width %d bits is narrower than configured prime bits %d: %w",
			provider.BitLen(), cfg.PrimeBits, rsaerr.ErrBadArgument)
	}
	if err := primegen.Validate(primes); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	n := primes.N()
	if n.BitLen() != cfg.ModulusBits {
		return nil, fmt.Errorf("accumulator: modulus bit-length %d != configured %d: %w",
			n.BitLen(), cfg.ModulusBits, rsaerr.ErrInternalInvariant)
	}
	a := &Accumulator{
		cfg:      cfg,
		provider: provider,
		n:        n,
		secret:   &Secret{Primes: primes, D: primes.Phi()},
		z:        new(big.Int).Set(cfg.Base),
		logger:   logger,
		metrics:  m,
	}
	a.metrics.SetAccumulatorBitLen(a.z.BitLen())
	return a, nil
}

// NewPublic constructs a public-verifier Accumulator from a modulus
// and an externally observed accumulation value z. Add always fails
// with ErrSecretRequired on a public Accumulator (spec section 9's
// third open question); Delete and Prove fail with the same error.
func NewPublic(cfg *config.Config, provider digest.Provider, n, z *big.Int, logger log.Logger, m *metrics.Metrics) (*Accumulator, error) {
	if cfg == nil || provider == nil || n == nil || z == nil {
		return nil, fmt.Errorf("accumulator: nil argument: %w", rsaerr.ErrBadArgument)
	}
	if provider.BitLen() < cfg.PrimeBits {
		return nil, fmt.Errorf("accumulator: digest width %d bits is narrower than configured prime bits %d: %w",
			provider.BitLen(), cfg.PrimeBits, rsaerr.ErrBadArgument)
	}
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	a := &Accumulator{
		cfg:      cfg,
		provider: provider,
		n:        new(big.Int).Set(n),
		z:        new(big.Int).Set(z),
		logger:   logger,
		metrics:  m,
	}
	a.metrics.SetAccumulatorBitLen(a.z.BitLen())
	return a, nil
}

// N returns the accumulator's modulus.
func (a *Accumulator) N() *big.Int {
	return new(big.Int).Set(a.n)
}

// Config returns the accumulator's configuration, needed by callers
// (notably update.Open) that must reproduce the same prime-search
// parameters this accumulator uses.
func (a *Accumulator) Config() *config.Config {
	return a.cfg
}

// Digest returns the accumulator's digest provider.
func (a *Accumulator) Digest() digest.Provider {
	return a.provider
}

// Z returns the accumulator's current accumulation value.
func (a *Accumulator) Z() *big.Int {
	return new(big.Int).Set(a.z)
}

// IsHolder reports whether this Accumulator holds the secret
// factorisation and can therefore Add, Delete and Prove.
func (a *Accumulator) IsHolder() bool {
	return a.secret != nil
}

// Add absorbs element x into the accumulation and returns a
// pre-image Witness for it: w such that w^y == the new z, where y is
// x's prime representative. Requires the secret (spec section 4.3);
// fails ErrSecretRequired on a public Accumulator (spec section 9).
func (a *Accumulator) Add(x []byte) (Witness, error) {
	if a.secret == nil {
		return Witness{}, fmt.Errorf("accumulator: add: %w", rsaerr.ErrSecretRequired)
	}
	res, err := elementmap.Map(a.provider, x, a.cfg.PrimeBits, a.cfg.MRRounds)
	if err != nil {
		return Witness{}, err
	}
	w := a.Z()
	a.z = bigutil.ModPow(a.z, res.Y, a.n)
	a.metrics.ObserveAdd()
	a.metrics.SetAccumulatorBitLen(a.z.BitLen())
	a.logger.Debug("accumulator: add", "nonce", res.Nonce.String())
	return Witness{X: append([]byte(nil), x...), Nonce: res.Nonce, W: w}, nil
}

// Delete validates wit, then removes its element from the
// accumulation. Requires the secret; fails ErrSecretRequired on a
// public Accumulator, ErrWitnessInvalid if wit does not currently
// verify.
func (a *Accumulator) Delete(wit Witness) (*big.Int, error) {
	if a.secret == nil {
		return nil, fmt.Errorf("accumulator: delete: %w", rsaerr.ErrSecretRequired)
	}
	y := elementmap.Recover(a.provider, wit.X, wit.Nonce, a.cfg.PrimeBits)
	if !a.verifyY(wit.W, y) {
		return nil, fmt.Errorf("accumulator: delete: %w", rsaerr.ErrWitnessInvalid)
	}
	yInv, err := bigutil.ModInv(y, a.secret.D)
	if err != nil {
		return nil, fmt.Errorf("accumulator: delete: %w", err)
	}
	a.z = bigutil.ModPow(a.z, yInv, a.n)
	a.metrics.ObserveDelete()
	a.metrics.SetAccumulatorBitLen(a.z.BitLen())
	a.logger.Debug("accumulator: delete", "nonce", wit.Nonce.String())
	return a.Z(), nil
}

// Prove computes a fresh Witness for an element already absorbed into
// the accumulation, without needing the original add-time Witness.
// Requires the secret; fails ErrSecretRequired on a public
// Accumulator.
func (a *Accumulator) Prove(x []byte) (Witness, error) {
	if a.secret == nil {
		return Witness{}, fmt.Errorf("accumulator: prove: %w", rsaerr.ErrSecretRequired)
	}
	res, err := elementmap.Map(a.provider, x, a.cfg.PrimeBits, a.cfg.MRRounds)
	if err != nil {
		return Witness{}, err
	}
	yInv, err := bigutil.ModInv(res.Y, a.secret.D)
	if err != nil {
		return Witness{}, fmt.Errorf("accumulator: prove: %w", err)
	}
	w := bigutil.ModPow(a.z, yInv, a.n)
	return Witness{X: append([]byte(nil), x...), Nonce: res.Nonce, W: w}, nil
}

// Verify reports whether wit currently proves membership: w^y == z
// mod n, where y = H(x) + nonce.
func (a *Accumulator) Verify(wit Witness) bool {
	y := elementmap.Recover(a.provider, wit.X, wit.Nonce, a.cfg.PrimeBits)
	ok := a.verifyY(wit.W, y)
	a.metrics.ObserveVerify(ok)
	if !ok {
		a.logger.Warn("accumulator: verify failed", "nonce", wit.Nonce.String())
	}
	return ok
}

func (a *Accumulator) verifyY(w, y *big.Int) bool {
	got := bigutil.ModPow(w, y, a.n)
	return got.Cmp(a.z) == 0
}
