package model

type TransactionPool struct {
	// TransactionPool contains all admitted transactions that haven't been committed.
	Txs []*Transaction
	// Content hashes of pooled transactions, used to reject duplicates.
	seen map[string]bool
}

// NewTransactionPool creates a new transaction pool with no transaction at all.
func NewTransactionPool() *TransactionPool {
	return &TransactionPool{
		seen: make(map[string]bool),
	}
}

func (p *TransactionPool) Add(tx *Transaction) {
	p.Txs = append(p.Txs, tx)
	p.seen[tx.ContentHash()] = true
}

func (p *TransactionPool) Contains(tx *Transaction) bool {
	return p.seen[tx.ContentHash()]
}

func (p *TransactionPool) Len() int {
	return len(p.Txs)
}

// PendingOutflow sums the amounts address is already sending in the pool.
func (p *TransactionPool) PendingOutflow(address string) int64 {
	var total int64
	for _, tx := range p.Txs {
		if tx.Sender == address {
			total += tx.Amount
		}
	}
	return total
}

// Remove drops every pooled transaction that appears in txs.
func (p *TransactionPool) Remove(txs []*Transaction) {
	drop := make(map[string]bool, len(txs))
	for _, tx := range txs {
		drop[tx.ContentHash()] = true
	}
	kept := p.Txs[:0]
	for _, tx := range p.Txs {
		h := tx.ContentHash()
		if drop[h] {
			delete(p.seen, h)
			continue
		}
		kept = append(kept, tx)
	}
	p.Txs = kept
}
