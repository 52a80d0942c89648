// Package config provides the Config type and fluent Builder used to
// construct an Accumulator's parameters: BASE, MODULUS_BITS and
// PRIME_BITS from spec section 6, plus the digest identifier and the
// number of Miller-Rabin rounds run on primality-test survivors.
package config

import (
	"fmt"
	"math/big"

	"github.com/luxfi/rsa-acc/rsaerr"
)

// Config holds the constants an Accumulator and PrimeGen are
// parameterised by.
type Config struct {
	Base        *big.Int // fixed initial value of z, default 65537
	ModulusBits int      // target RSA modulus bit-length, default 3072
	PrimeBits   int      // element-prime search range width, default 128
	MRRounds    int      // Miller-Rabin rounds on survivors, default 24
	DigestID    string   // digest identifier, default "sha256"
}

// Builder provides a fluent interface for constructing a Config,
// latching the first validation error encountered so callers can
// chain without checking each step.
type Builder struct {
	config *Config
	err    error
}

// NewBuilder creates a new Builder seeded with the reference defaults.
func NewBuilder() *Builder {
	return &Builder{
		config: &Config{
			Base:        big.NewInt(65537),
			ModulusBits: 3072,
			PrimeBits:   128,
			MRRounds:    24,
			DigestID:    "sha256",
		},
	}
}

// WithBase overrides the fixed initial accumulation value.
func (b *Builder) WithBase(base *big.Int) *Builder {
	if b.err != nil {
		return b
	}
	if base == nil || base.Sign() <= 0 {
		b.err = fmt.Errorf("config: base must be positive: %w", rsaerr.ErrBadArgument)
		return b
	}
	b.config.Base = new(big.Int).Set(base)
	return b
}

// WithModulusBits overrides the target RSA modulus bit-length.
func (b *Builder) WithModulusBits(bits int) *Builder {
	if b.err != nil {
		return b
	}
	if bits < 512 || bits%2 != 0 {
		b.err = fmt.Errorf("config: modulus bits must be even and >= 512, got %d: %w", bits, rsaerr.ErrBadArgument)
		return b
	}
	b.config.ModulusBits = bits
	return b
}

// WithPrimeBits overrides the element-prime search range width.
func (b *Builder) WithPrimeBits(bits int) *Builder {
	if b.err != nil {
		return b
	}
	if bits < 32 || bits > 256 {
		b.err = fmt.Errorf("config: prime bits must be in [32, 256], got %d: %w", bits, rsaerr.ErrBadArgument)
		return b
	}
	b.config.PrimeBits = bits
	return b
}

// WithMRRounds overrides the number of Miller-Rabin rounds run on
// primality-test survivors (after the initial one-round rejection
// pass in PrimeGen; ElementMap always uses this count too).
func (b *Builder) WithMRRounds(rounds int) *Builder {
	if b.err != nil {
		return b
	}
	if rounds < 1 {
		b.err = fmt.Errorf("config: mr rounds must be >= 1, got %d: %w", rounds, rsaerr.ErrBadArgument)
		return b
	}
	b.config.MRRounds = rounds
	return b
}

// WithDigest overrides the digest identifier.
func (b *Builder) WithDigest(id string) *Builder {
	if b.err != nil {
		return b
	}
	b.config.DigestID = id
	return b
}

// Build returns the final Config, or the first error latched by a
// With* call.
func (b *Builder) Build() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.config.PrimeBits*2 >= b.config.ModulusBits {
		return nil, fmt.Errorf("config: prime bits %d too large relative to modulus bits %d: %w",
			b.config.PrimeBits, b.config.ModulusBits, rsaerr.ErrBadArgument)
	}
	clone := *b.config
	clone.Base = new(big.Int).Set(b.config.Base)
	return &clone, nil
}
