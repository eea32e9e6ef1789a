package utils

import (
	"fmt"

	"github.com/Luismorlan/ledger_in_go/model"
)

// A transaction is admissible if:
// 1. Both parties are present. Rewards never come through here.
// 2. It is signed, and the signature verifies when a verifier is given.
// 3. The amount is positive.
// 4. It is neither committed already nor in the pool.
// 5. The sender can cover it together with what it already has pending.
func IsValidTransaction(tx *model.Transaction, bc *model.Blockchain, pool *model.TransactionPool, v model.Verifier) error {
	if tx.Sender == "" || tx.Recipient == "" {
		return fmt.Errorf("%w: sender and recipient are required", model.ErrInvalidTransaction)
	}

	if _, err := tx.IsValid(); err != nil {
		return fmt.Errorf("%w: %w", model.ErrInvalidTransaction, err)
	}

	if v != nil && !tx.VerifySignature(v) {
		return fmt.Errorf("%w: signature does not match sender", model.ErrInvalidTransaction)
	}

	if tx.Amount <= 0 {
		return fmt.Errorf("%w: amount %d is not positive", model.ErrInvalidTransaction, tx.Amount)
	}

	if bc.IsCommitted(tx) {
		return fmt.Errorf("%w: transaction %s is already committed", model.ErrInvalidTransaction, tx.ContentHash())
	}

	if pool.Contains(tx) {
		return fmt.Errorf("%w: existing transaction %s", model.ErrInvalidTransaction, tx.ContentHash())
	}

	// Making sure the sender does not spend more than it has.
	available := BalanceOf(bc.Blocks, tx.Sender) - pool.PendingOutflow(tx.Sender)
	if available < tx.Amount {
		return fmt.Errorf("%w: %s has %d, needs %d", model.ErrInsufficientFunds, tx.Sender, available, tx.Amount)
	}
	return nil
}

// IsValidBlockTransactions checks that no transfer in block was committed
// before or appears twice, and that every signature verifies when a verifier
// is given.
func IsValidBlockTransactions(block *model.Block, bc *model.Blockchain, v model.Verifier) error {
	seen := make(map[string]bool, len(block.Txs))
	for _, tx := range block.Txs {
		if tx.IsReward() {
			continue
		}
		h := tx.ContentHash()
		if bc.IsCommitted(tx) {
			return fmt.Errorf("%w: transaction %s is already committed", model.ErrInvalidBlock, h)
		}
		if seen[h] {
			return fmt.Errorf("%w: transaction %s appears twice", model.ErrInvalidBlock, h)
		}
		seen[h] = true
		if v != nil && !tx.VerifySignature(v) {
			return fmt.Errorf("%w: signature of %s does not match sender", model.ErrInvalidBlock, h)
		}
	}
	return nil
}

// PrunePool rebuilds pool keeping only transactions that are still
// admissible on bc, in their original order. It returns the dropped ones.
func PrunePool(pool *model.TransactionPool, bc *model.Blockchain, v model.Verifier) (*model.TransactionPool, []*model.Transaction) {
	kept := model.NewTransactionPool()
	var dropped []*model.Transaction
	for _, tx := range pool.Txs {
		if err := IsValidTransaction(tx, bc, kept, v); err != nil {
			dropped = append(dropped, tx)
			continue
		}
		kept.Add(tx)
	}
	return kept, dropped
}
