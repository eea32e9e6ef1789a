package full_node

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/Luismorlan/ledger_in_go/model"
)

// Miner runs MineTransactions on a dedicated goroutine until stopped.
type Miner struct {
	node *FullNode
	// Receives the reward of every mined block.
	address string

	m      sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewMiner(node *FullNode, address string) *Miner {
	return &Miner{
		node:    node,
		address: address,
	}
}

// MineOnce mines a single block in the caller's goroutine.
func (mn *Miner) MineOnce(ctx context.Context) (*model.Block, error) {
	return mn.node.MineTransactions(ctx, mn.address)
}

func (mn *Miner) IsRunning() bool {
	mn.m.Lock()
	defer mn.m.Unlock()
	return mn.cancel != nil
}

// Start mining, infinite loop until Stop.
func (mn *Miner) Start() error {
	mn.m.Lock()
	defer mn.m.Unlock()
	if mn.cancel != nil {
		return errors.New("mining has already been started")
	}
	ctx, cancel := context.WithCancel(context.Background())
	mn.cancel = cancel
	mn.done = make(chan struct{})
	go mn.loop(ctx, mn.done)
	return nil
}

// Stop interrupts the block being sealed and waits for the worker to exit.
func (mn *Miner) Stop() error {
	mn.m.Lock()
	cancel, done := mn.cancel, mn.done
	mn.cancel, mn.done = nil, nil
	mn.m.Unlock()

	if cancel == nil {
		return errors.New("no running mining task to stop")
	}
	cancel()
	<-done
	return nil
}

func (mn *Miner) loop(ctx context.Context, done chan struct{}) {
	defer func() {
		// Give up the slot unless Stop already took it, so Start works again.
		mn.m.Lock()
		if mn.done == done {
			mn.cancel()
			mn.cancel, mn.done = nil, nil
		}
		mn.m.Unlock()
		close(done)
	}()
	for {
		_, err := mn.MineOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		// A stale block just means someone else extended the tail; mine on the new one.
		if err != nil && !errors.Is(err, model.ErrStaleBlock) {
			log.Println("mining failed:", err)
			return
		}
	}
}
