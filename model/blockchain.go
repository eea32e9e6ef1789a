package model

// Blockchain is the ordered sequence of committed blocks. Index 0 is genesis.
type Blockchain struct {
	Blocks []*Block
	// Content hashes of every committed non-reward transaction.
	committed map[string]bool
}

// Create an empty blockchain. The caller commits genesis.
func NewBlockChain() *Blockchain {
	return &Blockchain{
		committed: make(map[string]bool),
	}
}

// Append commits b and records its transactions.
func (bc *Blockchain) Append(b *Block) {
	bc.Blocks = append(bc.Blocks, b)
	for _, tx := range b.Txs {
		if !tx.IsReward() {
			bc.committed[tx.ContentHash()] = true
		}
	}
}

// IsCommitted reports whether tx is already in a committed block.
func (bc *Blockchain) IsCommitted(tx *Transaction) bool {
	return bc.committed[tx.ContentHash()]
}

// Height is the index of the last block, -1 if the chain is empty.
func (bc *Blockchain) Height() int64 {
	return int64(len(bc.Blocks)) - 1
}

// Tail returns the last committed block or nil.
func (bc *Blockchain) Tail() *Block {
	if len(bc.Blocks) == 0 {
		return nil
	}
	return bc.Blocks[len(bc.Blocks)-1]
}
