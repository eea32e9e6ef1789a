package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockchainAppend(t *testing.T) {
	bc := NewBlockChain()
	assert.Equal(t, int64(-1), bc.Height())
	assert.Nil(t, bc.Tail())

	transfer := &Transaction{Sender: "alice", Recipient: "bob", Amount: 10, Timestamp: 1}
	reward := &Transaction{Recipient: "miner", Amount: 100, Timestamp: 2}
	bc.Append(&Block{})
	b := &Block{Txs: []*Transaction{transfer, reward}}
	bc.Append(b)

	assert.Equal(t, int64(1), bc.Height())
	assert.Same(t, b, bc.Tail())
	assert.True(t, bc.IsCommitted(&Transaction{Sender: "alice", Recipient: "bob", Amount: 10, Timestamp: 1}))
	assert.False(t, bc.IsCommitted(reward))
	assert.False(t, bc.IsCommitted(&Transaction{Sender: "alice", Recipient: "bob", Amount: 10, Timestamp: 3}))
}
