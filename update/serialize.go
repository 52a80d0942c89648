package update

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/internal/wire"
	"github.com/luxfi/rsa-acc/log"
	"github.com/luxfi/rsa-acc/metrics"
)

// MarshalBinary encodes the Update's reproducible state — the
// snapshot (digest identifier, prime bit-length, n, z) plus the
// aggregated (piAdd, piDel) products — per spec section 6's
// persistent state layout. The ID is preserved so a resumed Update
// keeps correlating with prior log lines and metrics.
func (u *Update) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	idBytes, err := u.ID.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("update: marshal: %w", err)
	}
	if _, err := buf.Write(idBytes); err != nil {
		return nil, err
	}
	if err := wire.WriteBytes(&buf, []byte(u.digestID)); err != nil {
		return nil, err
	}
	var primeBitsBuf [4]byte
	binary.BigEndian.PutUint32(primeBitsBuf[:], uint32(u.primeBits))
	if _, err := buf.Write(primeBitsBuf[:]); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, u.n); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, u.zSnapshot); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, u.piAdd); err != nil {
		return nil, err
	}
	if err := wire.WriteBigInt(&buf, u.piDel); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalUpdate decodes an Update written by MarshalBinary. logger
// and m may be nil. Unlike Open, this does not touch a live
// Accumulator — the returned Update carries whatever (n, z) snapshot
// was current when it was marshalled, which the caller is responsible
// for keeping in sync with the accumulator it intends to apply
// witnesses against.
func UnmarshalUpdate(data []byte, logger log.Logger, m *metrics.Metrics) (*Update, error) {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	buf := bytes.NewReader(data)

	var idBytes [16]byte
	if _, err := io.ReadFull(buf, idBytes[:]); err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(idBytes[:]); err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}

	digestIDBytes, err := wire.ReadBytes(buf)
	if err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	provider, err := digest.Resolve(string(digestIDBytes))
	if err != nil {
		return nil, err
	}

	var primeBitsBuf [4]byte
	if _, err := io.ReadFull(buf, primeBitsBuf[:]); err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	primeBits := int(binary.BigEndian.Uint32(primeBitsBuf[:]))

	n, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	zSnapshot, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	piAdd, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}
	piDel, err := wire.ReadBigInt(buf)
	if err != nil {
		return nil, fmt.Errorf("update: unmarshal: %w", err)
	}

	return &Update{
		ID:        id,
		digestID:  string(digestIDBytes),
		provider:  provider,
		primeBits: primeBits,
		n:         n,
		zSnapshot: zSnapshot,
		piAdd:     piAdd,
		piDel:     piDel,
		logger:    logger,
		metrics:   m,
	}, nil
}

