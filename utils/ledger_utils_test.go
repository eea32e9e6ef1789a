package utils

import (
	"testing"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/stretchr/testify/assert"
)

func ledgerTestBlocks() []*model.Block {
	return []*model.Block{
		{},
		{Txs: []*model.Transaction{
			{Recipient: "alice", Amount: 100},
		}},
		{Txs: []*model.Transaction{
			{Sender: "alice", Recipient: "bob", Amount: 40},
			{Sender: "bob", Recipient: "carol", Amount: 15},
			{Recipient: "bob", Amount: 100},
		}},
	}
}

func TestBalanceOf(t *testing.T) {
	blocks := ledgerTestBlocks()
	assert.Equal(t, int64(60), BalanceOf(blocks, "alice"))
	assert.Equal(t, int64(125), BalanceOf(blocks, "bob"))
	assert.Equal(t, int64(15), BalanceOf(blocks, "carol"))
	assert.Equal(t, int64(0), BalanceOf(blocks, "dave"))
	// Rewards have no sender; the empty address is never debited.
	assert.Equal(t, int64(0), BalanceOf(blocks, ""))
}

func TestBalanceIgnoresOrderWithinBlock(t *testing.T) {
	blocks := ledgerTestBlocks()
	before := BuildLedger(blocks)

	txs := blocks[2].Txs
	txs[0], txs[2] = txs[2], txs[0]
	after := BuildLedger(blocks)

	assert.Equal(t, before.L, after.L)
	for addr, balance := range after.L {
		assert.Equal(t, balance, BalanceOf(blocks, addr))
	}
}

func TestBuildLedger(t *testing.T) {
	l := BuildLedger(ledgerTestBlocks())
	assert.Equal(t, map[string]int64{"alice": 60, "bob": 125, "carol": 15}, l.L)
	assert.Equal(t, int64(0), l.BalanceOf("dave"))
}

func TestApplyBlock(t *testing.T) {
	l := model.NewLedger()
	ok := &model.Block{Txs: []*model.Transaction{
		{Recipient: "alice", Amount: 100},
	}}
	assert.NoError(t, ApplyBlock(ok, l, 100))
	assert.Equal(t, int64(100), l.BalanceOf("alice"))

	overdraw := &model.Block{Txs: []*model.Transaction{
		{Sender: "alice", Recipient: "bob", Amount: 150},
	}}
	assert.ErrorIs(t, ApplyBlock(overdraw, BuildLedger([]*model.Block{ok}), 100), model.ErrInvalidBlock)

	greedy := &model.Block{Txs: []*model.Transaction{
		{Recipient: "alice", Amount: 1000},
	}}
	assert.ErrorIs(t, ApplyBlock(greedy, model.NewLedger(), 100), model.ErrInvalidBlock)

	double := &model.Block{Txs: []*model.Transaction{
		{Recipient: "alice", Amount: 100},
		{Recipient: "alice", Amount: 100},
	}}
	assert.ErrorIs(t, ApplyBlock(double, model.NewLedger(), 100), model.ErrInvalidBlock)

	negative := &model.Block{Txs: []*model.Transaction{
		{Sender: "alice", Recipient: "bob", Amount: -5},
	}}
	assert.ErrorIs(t, ApplyBlock(negative, model.NewLedger(), 100), model.ErrInvalidBlock)
}
