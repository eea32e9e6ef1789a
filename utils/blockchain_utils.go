package utils

import (
	"context"
	"fmt"

	"github.com/Luismorlan/ledger_in_go/model"
)

// CreateNewBlock assembles a block on top of prevHash and mines it.
// 1. Fill in previous hash.
// 2. Fill in transactions provided, reward last.
// 3. Mine the block.
func CreateNewBlock(ctx context.Context, txs []*model.Transaction, prevHash string, target int, genesisDifficulty int) (*model.Block, error) {
	block := model.NewBlock(target, genesisDifficulty, txs, prevHash)
	if _, err := block.Seal(ctx); err != nil {
		return nil, err
	}
	return block, nil
}

// IsLinked checks that block extends tail.
func IsLinked(block *model.Block, tail *model.Block) error {
	if tail == nil {
		return model.ErrEmptyChain
	}
	if block.PrevHash != tail.ContentHash() {
		return fmt.Errorf("%w: previous hash %s does not match tail %s", model.ErrInvalidBlock, block.PrevHash, tail.ContentHash())
	}
	return nil
}

// VerifyChain checks linkage and proof-of-work of every block after genesis.
func VerifyChain(blocks []*model.Block) error {
	if len(blocks) == 0 {
		return model.ErrEmptyChain
	}
	for i := 1; i < len(blocks); i++ {
		if err := IsLinked(blocks[i], blocks[i-1]); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if err := blocks[i].Verify(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
