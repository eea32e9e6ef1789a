package utils

import (
	"fmt"

	"github.com/Luismorlan/ledger_in_go/model"
)

// Handle transaction: debit the sender unless it is a reward, credit the recipient.
func HandleTransaction(tx *model.Transaction, l *model.Ledger) {
	if !tx.IsReward() {
		l.L[tx.Sender] -= tx.Amount
	}
	l.L[tx.Recipient] += tx.Amount
}

// Handle a bunch of transactions.
// Note that ledger will be changed directly.
func HandleTransactions(txs []*model.Transaction, l *model.Ledger) {
	for i := 0; i < len(txs); i++ {
		HandleTransaction(txs[i], l)
	}
}

// BuildLedger folds every transaction of every block into a fresh ledger.
func BuildLedger(blocks []*model.Block) *model.Ledger {
	l := model.NewLedger()
	for i := 0; i < len(blocks); i++ {
		HandleTransactions(blocks[i].Txs, l)
	}
	return l
}

// BalanceOf folds the committed blocks for a single address.
func BalanceOf(blocks []*model.Block, address string) int64 {
	var balance int64
	for _, b := range blocks {
		for _, tx := range b.Txs {
			if !tx.IsReward() && tx.Sender == address {
				balance -= tx.Amount
			}
			if tx.Recipient == address {
				balance += tx.Amount
			}
		}
	}
	return balance
}

// ApplyBlock folds block into l. It fails, leaving l partially updated, if the
// block mints anything other than a single reward of the given amount or
// leaves any sender with a negative balance.
func ApplyBlock(block *model.Block, l *model.Ledger, reward int64) error {
	rewards := 0
	for _, tx := range block.Txs {
		if tx.Amount <= 0 {
			return fmt.Errorf("%w: amount %d is not positive", model.ErrInvalidBlock, tx.Amount)
		}
		if tx.IsReward() {
			rewards++
			if tx.Amount != reward {
				return fmt.Errorf("%w: reward %d, expected %d", model.ErrInvalidBlock, tx.Amount, reward)
			}
		}
		HandleTransaction(tx, l)
		if !tx.IsReward() && l.L[tx.Sender] < 0 {
			return fmt.Errorf("%w: %s overdrawn by %s", model.ErrInvalidBlock, tx.Sender, tx)
		}
	}
	if rewards > 1 {
		return fmt.Errorf("%w: %d reward transactions", model.ErrInvalidBlock, rewards)
	}
	return nil
}
