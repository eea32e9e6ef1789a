package model

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// The sentinel character that must repeat Difficulty times in a sealed hash.
const Sentinel = 'F'

// How many leading hex characters of the hash are skipped by the proof check.
const ProofOffset = 8

type Block struct {
	// Divides GenesisDifficulty to give the number of required sentinels.
	Target int
	// Difficulty at target 1.
	GenesisDifficulty int
	// Transactions for this block. The reward transaction is the last one.
	Txs []*Transaction
	// Hash of the previous block, empty for genesis.
	PrevHash string
	// Creation time in unix nanoseconds.
	Timestamp int64
	// Nonce is the miner's challenge for sealing the block.
	Nonce int64
	// Set once Seal has found a winning nonce.
	Sealed bool
}

// NewBlock creates an unsealed block with nonce 0.
func NewBlock(target int, genesisDifficulty int, txs []*Transaction, prevHash string) *Block {
	return &Block{
		Target:            target,
		GenesisDifficulty: genesisDifficulty,
		Txs:               txs,
		PrevHash:          prevHash,
		Timestamp:         time.Now().UnixNano(),
	}
}

func (b *Block) CanonicalFields() map[string]interface{} {
	txs := make([]interface{}, 0, len(b.Txs))
	for _, tx := range b.Txs {
		txs = append(txs, tx.blockFields())
	}
	return map[string]interface{}{
		"timestamp":    b.Timestamp,
		"previoushash": b.PrevHash,
		"transactions": txs,
		"nonce":        b.Nonce,
	}
}

// ContentHash is recomputed on every call because the nonce moves while sealing.
func (b *Block) ContentHash() string {
	return digest(b.CanonicalFields())
}

// Difficulty is GenesisDifficulty / Target using integer division.
func (b *Block) Difficulty() (int, error) {
	if b.Target <= 0 {
		return 0, fmt.Errorf("%w: target %d", ErrInvalidTarget, b.Target)
	}
	return b.GenesisDifficulty / b.Target, nil
}

// IsSealed reports whether the current hash satisfies the proof-of-work.
func (b *Block) IsSealed() bool {
	d, err := b.Difficulty()
	if err != nil {
		return false
	}
	return MatchDifficulty(b.ContentHash(), d)
}

// MatchDifficulty reports whether hash, after skipping ProofOffset characters,
// starts with difficulty sentinels. Difficulty 0 requires no proof.
func MatchDifficulty(hash string, difficulty int) bool {
	if difficulty <= 0 {
		return true
	}
	if len(hash) < ProofOffset+difficulty {
		return false
	}
	return strings.Count(hash[ProofOffset:ProofOffset+difficulty], string(Sentinel)) == difficulty
}

// Seal searches nonces upward from the current one until the block hash
// satisfies the proof-of-work and returns the winning nonce. ctx is checked
// on every attempt; on cancellation the block stays unsealed. Sealing an
// already sealed block returns its nonce.
func (b *Block) Seal(ctx context.Context) (int64, error) {
	if b.Sealed {
		return b.Nonce, nil
	}
	d, err := b.Difficulty()
	if err != nil {
		return 0, err
	}
	if d > len(b.ContentHash())-ProofOffset {
		return 0, fmt.Errorf("%w: difficulty %d can never be met", ErrInvalidTarget, d)
	}
	for !MatchDifficulty(b.ContentHash(), d) {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		b.Nonce++
	}
	b.Sealed = true
	return b.Nonce, nil
}

// Verify checks that the proof-of-work holds for the current nonce and that
// every non-reward transaction carries a signature. The Sealed flag is ignored.
func (b *Block) Verify() error {
	if !b.IsSealed() {
		return fmt.Errorf("%w: proof-of-work does not hold for %s", ErrInvalidBlock, b.ContentHash())
	}
	for _, tx := range b.Txs {
		if _, err := tx.IsValid(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
		}
	}
	return nil
}
