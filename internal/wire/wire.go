// Package wire implements the simple length-prefixed big-endian
// encoding used by the opt-in Export/Import and MarshalBinary/
// UnmarshalBinary helpers on Accumulator, Witness and Update. Spec
// section 6 only requires "all integers are unsigned big-endian" and
// mandates no wire framing beyond that; this is the simplest framing
// that satisfies it and is not a public wire protocol in its own
// right.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// WriteBytes writes a uint32 length prefix followed by b.
func WriteBytes(w io.Writer, b []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadBytes reads a length-prefixed byte string written by WriteBytes.
func ReadBytes(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	const maxLen = 1 << 24 // 16 MiB; generous upper bound for a modulus-sized integer
	if n > maxLen {
		return nil, fmt.Errorf("wire: length %d exceeds maximum %d", n, maxLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteBigInt writes x's unsigned big-endian byte representation,
// length-prefixed. x must be non-negative.
func WriteBigInt(w io.Writer, x *big.Int) error {
	if x.Sign() < 0 {
		return fmt.Errorf("wire: cannot encode negative integer %s", x.String())
	}
	return WriteBytes(w, x.Bytes())
}

// ReadBigInt reads a big-endian unsigned integer written by
// WriteBigInt.
func ReadBigInt(r io.Reader) (*big.Int, error) {
	b, err := ReadBytes(r)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}
