package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionPool(t *testing.T) {
	p := NewTransactionPool()
	a := &Transaction{Sender: "alice", Recipient: "bob", Amount: 10, Timestamp: 1}
	b := &Transaction{Sender: "alice", Recipient: "carol", Amount: 5, Timestamp: 2}
	c := &Transaction{Sender: "bob", Recipient: "alice", Amount: 7, Timestamp: 3}

	p.Add(a)
	p.Add(b)
	p.Add(c)
	assert.Equal(t, 3, p.Len())
	assert.True(t, p.Contains(&Transaction{Sender: "alice", Recipient: "bob", Amount: 10, Timestamp: 1}))
	assert.Equal(t, int64(15), p.PendingOutflow("alice"))
	assert.Equal(t, int64(0), p.PendingOutflow("carol"))

	p.Remove([]*Transaction{a, c})
	assert.Equal(t, []*Transaction{b}, p.Txs)
	assert.False(t, p.Contains(a))
	assert.True(t, p.Contains(b))
}
