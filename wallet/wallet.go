package wallet

import (
	"log"

	"github.com/Luismorlan/ledger_in_go/model"
)

// Node is the part of a full node a wallet talks to.
type Node interface {
	AddTransaction(tx *model.Transaction) error
	BalanceOf(address string) int64
}

// User signs and sends transactions to a node.
type Wallet struct {
	signer model.Signer
	node   Node
}

func NewWallet(signer model.Signer, node Node) *Wallet {
	return &Wallet{
		signer: signer,
		node:   node,
	}
}

func (w *Wallet) Address() string {
	return w.signer.Address()
}

func (w *Wallet) GetBalance() int64 {
	return w.node.BalanceOf(w.signer.Address())
}

// TransferMoney signs a transfer of value to receiver and submits it.
func (w *Wallet) TransferMoney(receiver string, value int64) (*model.Transaction, error) {
	tx, err := CreatePendingTransaction(w.signer, receiver, value)
	if err != nil {
		log.Println("failed to create new transaction", err)
		return nil, err
	}
	if err := w.node.AddTransaction(tx); err != nil {
		log.Println("failed to send transaction to full node", err)
		return nil, err
	}
	return tx, nil
}

// Create a pending transaction from the signer to receiver, signed and ready to submit.
func CreatePendingTransaction(signer model.Signer, receiver string, value int64) (*model.Transaction, error) {
	tx, err := model.NewTransaction(signer.Address(), receiver, value)
	if err != nil {
		return nil, err
	}
	if err := tx.Sign(signer); err != nil {
		return nil, err
	}
	return tx, nil
}
