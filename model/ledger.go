package model

// Ledger is the balance of every address seen on the committed chain.
type Ledger struct {
	L map[string]int64
}

func NewLedger() *Ledger {
	return &Ledger{
		L: make(map[string]int64),
	}
}

// BalanceOf returns 0 for unknown addresses.
func (l *Ledger) BalanceOf(address string) int64 {
	return l.L[address]
}
