// Package update implements the Update aggregator from spec section
// 4.4: a batched record of additions and deletions that lets a
// witness be refreshed in O(1) exponentiations via a single
// extended-GCD step, without consulting the accumulator holder.
package update

import (
	"fmt"
	"math/big"

	"github.com/google/uuid"

	"github.com/luxfi/rsa-acc/accumulator"
	"github.com/luxfi/rsa-acc/digest"
	"github.com/luxfi/rsa-acc/elementmap"
	"github.com/luxfi/rsa-acc/internal/bigutil"
	"github.com/luxfi/rsa-acc/log"
	"github.com/luxfi/rsa-acc/metrics"
	"github.com/luxfi/rsa-acc/rsaerr"
)

var one = big.NewInt(1)

// Update aggregates a batch of additions (piAdd, the product of their
// prime representatives) and deletions (piDel). Its snapshot is the
// accumulation z taken after the batch was applied to the
// accumulator; a single Apply call refreshes a witness that was valid
// just before the batch into one that verifies against that snapshot.
//
// ID disambiguates concurrently open Updates in logs and metrics —
// a holder may open several Updates against sequential snapshots
// before any of them is applied.
type Update struct {
	ID        uuid.UUID
	digestID  string
	provider  digest.Provider
	primeBits int
	n         *big.Int
	zSnapshot *big.Int
	piAdd     *big.Int
	piDel     *big.Int
	logger    log.Logger
	metrics   *metrics.Metrics
}

// Open creates an Update snapshotting acc's current (digest, n, z).
// Subsequent mutations of acc do not affect this snapshot.
func Open(acc *accumulator.Accumulator, logger log.Logger, m *metrics.Metrics) *Update {
	if logger == nil {
		logger = log.NewNoOpLogger()
	}
	return &Update{
		ID:        uuid.New(),
		digestID:  acc.Config().DigestID,
		provider:  acc.Digest(),
		primeBits: acc.Config().PrimeBits,
		n:         acc.N(),
		zSnapshot: acc.Z(),
		piAdd:     new(big.Int).Set(one),
		piDel:     new(big.Int).Set(one),
		logger:    logger,
		metrics:   m,
	}
}

func (u *Update) yOf(wit accumulator.Witness) *big.Int {
	return elementmap.Recover(u.provider, wit.X, wit.Nonce, u.primeBits)
}

// AbsorbAdd folds wit's prime into the additions product piAdd.
func (u *Update) AbsorbAdd(wit accumulator.Witness) {
	u.piAdd.Mul(u.piAdd, u.yOf(wit))
}

// AbsorbDelete folds wit's prime into the deletions product piDel.
func (u *Update) AbsorbDelete(wit accumulator.Witness) {
	u.piDel.Mul(u.piDel, u.yOf(wit))
}

// UndoAdd reverses a previous AbsorbAdd call for wit. Fails with
// ErrInvalidDivision if wit's prime was not previously absorbed as an
// addition (or has already been undone).
func (u *Update) UndoAdd(wit accumulator.Witness) error {
	q, ok := bigutil.DivExact(u.piAdd, u.yOf(wit))
	if !ok {
		return fmt.Errorf("update: undo add: %w", rsaerr.ErrInvalidDivision)
	}
	u.piAdd = q
	return nil
}

// UndoDelete reverses a previous AbsorbDelete call for wit. Fails
// with ErrInvalidDivision if wit's prime was not previously absorbed
// as a deletion (or has already been undone).
func (u *Update) UndoDelete(wit accumulator.Witness) error {
	q, ok := bigutil.DivExact(u.piDel, u.yOf(wit))
	if !ok {
		return fmt.Errorf("update: undo delete: %w", rsaerr.ErrInvalidDivision)
	}
	u.piDel = q
	return nil
}

// Apply refreshes wit through this Update's aggregated batch,
// returning a new Witness that verifies against the snapshot z
// (assuming wit's element was not itself deleted somewhere in this
// batch — the caller must exclude such witnesses, per spec section
// 4.4 step 2). Apply is read-only and may be called any number of
// times against different witnesses that were valid just before the
// batch.
//
// When only a single addition occurred since wit was issued (piDel ==
// 1), this degenerates to the single-step fast path w' = w^piAdd mod
// n described in spec section 4.4.
func (u *Update) Apply(wit accumulator.Witness) (accumulator.Witness, error) {
	y := u.yOf(wit)

	g, a, b := bigutil.ExtGCD(u.piDel, y)
	if g.Cmp(one) != 0 {
		return accumulator.Witness{}, fmt.Errorf(
			"update: apply: prime is not coprime with deletions product (element was deleted in this batch?): %w",
			rsaerr.ErrUpdateMismatch)
	}

	wPowA := bigutil.ModPow(wit.W, new(big.Int).Mul(a, u.piAdd), u.n)
	zPowB := bigutil.ModPow(u.zSnapshot, b, u.n)
	wPrime := new(big.Int).Mod(new(big.Int).Mul(wPowA, zPowB), u.n)

	u.metrics.ObserveUpdateApplied()
	u.logger.Debug("update: apply", "update_id", u.ID.String())

	return accumulator.Witness{
		X:     append([]byte(nil), wit.X...),
		Nonce: new(big.Int).Set(wit.Nonce),
		W:     wPrime,
	}, nil
}
