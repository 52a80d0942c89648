package accumulator

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/luxfi/rsa-acc/config"
	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/internal/wire"
	"github.com/luxfi/rsa-acc/log"
	"github.com/luxfi/rsa-acc/metrics"
	"github.com/luxfi/rsa-acc/primegen"
)

// MarshalBinary encodes wit as (x, nonce, w), each length-prefixed
// big-endian, per spec section 6's persistent state layout for a
// Witness.
func (w Witness) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteBytes(&buf, w.X); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, w.Nonce); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, w.W); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a Witness written by MarshalBinary.
func (w *Witness) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)
	x, err := wire.ReadBytes(buf)
	if err != nil {
		return fmt.Errorf("accumulator: unmarshal witness: %w", err)
	}
	nonce, err := wire.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("accumulator: unmarshal witness: %w", err)
	}
	ww, err := wire.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("accumulator: unmarshal witness: %w", err)
	}
	w.X, w.Nonce, w.W = x, nonce, ww
	return nil
}

// Export serialises the accumulator's reproducible state: its digest
// identifier, modulus bits, prime bits and Miller-Rabin rounds, n, z,
// and — for a holder — the factorisation (p, q). A public
// Accumulator's Export omits (p, q). Config.Base is not written;
// Import rebuilds the Config with the default Base.
// This is the persistent state layout of spec section 6: "an
// Accumulator is reproducible from (H identifier, n, optional (p,
// q), z)".
func (a *Accumulator) Export() ([]byte, error) {
	var buf bytes.Buffer
	if err := wire.WriteBytes(&buf, []byte(a.cfg.DigestID)); err != nil {
		return nil, err
	}
	var header [12]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(a.cfg.ModulusBits))
	binary.BigEndian.PutUint32(header[4:8], uint32(a.cfg.PrimeBits))
	binary.BigEndian.PutUint32(header[8:12], uint32(a.cfg.MRRounds))
	if _, err := buf.Write(header[:]); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, a.n); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, a.z); err != nil {
		return nil, err
	}
	hasSecret := byte(0)
	if a.secret != nil {
		hasSecret = 1
	}
	if err := buf.WriteByte(hasSecret); err != nil {
		return nil, err
	}
	if a.secret != nil {
		if err := wire.WriteBigInt(&buf, a.secret.Primes.P); err != nil {
			return nil, err
		}
		if err := wire.WriteBigInt(&buf, a.secret.Primes.Q); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Import reconstructs an Accumulator from data written by Export,
// resolving the digest provider from the persisted identifier.
// logger and m may be nil.
func Import(data []byte, logger log.Logger, m *metrics.Metrics) (*Accumulator, error) {
	buf := bytes.NewReader(data)
	idBytes, err := wire.ReadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("accumulator: import: %w", err)
	}
	var header [12]byte
	if _, err := io.ReadFull(buf, header[:]); err != nil {
		return nil, fmt.Errorf("accumulator: import: %w", err)
	}
	modulusBits := int(binary.BigEndian.Uint32(header[0:4]))
	primeBits := int(binary.BigEndian.Uint32(header[4:8]))
	mrRounds := int(binary.BigEndian.Uint32(header[8:12]))

	n, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("accumulator: import: %w", err)
	}
	z, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("accumulator: import: %w", err)
	}
	hasSecretByte, err := buf.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("accumulator: import: %w", err)
	}

	provider, err := digest.Resolve(string(idBytes))
	if err != nil {
		return nil, err
	}
	cfg, err := config.NewBuilder().
		WithModulusBits(modulusBits).
		WithPrimeBits(primeBits).
		WithMRRounds(mrRounds).
		WithDigest(string(idBytes)).
		Build()
	if err != nil {
		return nil, err
	}

	if hasSecretByte == 1 {
		p, err := wire.ReadBigInt(buf)
		if err != nil {
			return nil, fmt.Errorf("accumulator: import: %w", err)
		}
		q, err := wire.ReadBigInt(buf)
		if err != nil {
			return nil, fmt.Errorf("accumulator: import: %w", err)
		}
		a, err := NewHolder(cfg, provider, &primegen.Primes{P: p, Q: q}, logger, m)
		if err != nil {
			return nil, err
		}
		a.z = z
		a.metrics.SetAccumulatorBitLen(a.z.BitLen())
		return a, nil
	}
	return NewPublic(cfg, provider, n, z, logger, m)
}
