package full_node

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/jinzhu/copier"
	uuid "github.com/satori/go.uuid"
)

// A full node owns the chain: committed blocks, the pool of admitted
// transactions and the rules that guard both.
type FullNode struct {
	// The blockchain it needs to maintain.
	blockchain *model.Blockchain
	// Transaction pool it need to maintain. Incoming transaction are added to this pool.
	txPool *model.TransactionPool
	// Checks sender signatures on admission, nil to only require their presence.
	verifier model.Verifier
	// Blockchain config.
	config config.AppConfig
	// A single mutex for changing internal state.
	m sync.RWMutex
	// Serializes MineTransactions.
	mining sync.Mutex
	// A unique indentifier of this Fullnode, only used to name its output files.
	uuid string
}

// Create a brand new full node, which contains a genesis block in the chain.
func NewFullNode(c config.AppConfig, v model.Verifier) *FullNode {
	f := newFullNode(c, v)
	// Cannot fail on an empty chain.
	_ = f.GenesisBlock()
	return f
}

func newFullNode(c config.AppConfig, v model.Verifier) *FullNode {
	if !c.VERIFY_SIGNATURES {
		v = nil
	}
	return &FullNode{
		blockchain: model.NewBlockChain(),
		txPool:     model.NewTransactionPool(),
		verifier:   v,
		config:     c,
		uuid:       uuid.NewV4().String(),
	}
}

// GenesisBlock commits the first block directly, without proof-of-work.
func (f *FullNode) GenesisBlock() error {
	f.m.Lock()
	defer f.m.Unlock()

	if len(f.blockchain.Blocks) > 0 {
		return model.ErrGenesisExists
	}
	genesis := model.NewBlock(f.config.TARGET, f.config.GENESIS_DIFFICULTY, []*model.Transaction{}, "")
	f.blockchain.Append(genesis)
	log.Println("Committed genesis block:", genesis.ContentHash())
	return nil
}

// LastBlock returns a copy of the most recently committed block.
func (f *FullNode) LastBlock() (*model.Block, error) {
	f.m.RLock()
	defer f.m.RUnlock()

	tail := f.blockchain.Tail()
	if tail == nil {
		return nil, model.ErrEmptyChain
	}
	b := &model.Block{}
	deepCopy(b, tail)
	return b, nil
}

// BalanceOf folds every committed transaction touching address.
func (f *FullNode) BalanceOf(address string) int64 {
	f.m.RLock()
	defer f.m.RUnlock()
	return utils.BalanceOf(f.blockchain.Blocks, address)
}

// AddTransaction admits tx to the pool or rejects it without side effects.
func (f *FullNode) AddTransaction(tx *model.Transaction) error {
	f.m.Lock()
	defer f.m.Unlock()

	if err := utils.IsValidTransaction(tx, f.blockchain, f.txPool, f.verifier); err != nil {
		return err
	}
	pooled := &model.Transaction{}
	deepCopy(pooled, tx)
	f.txPool.Add(pooled)
	log.Println("Admitted transaction:", pooled)
	return nil
}

// MineTransactions pays minerAddress the reward, seals the pool into a block
// on top of the tail and commits it. Sealing runs outside the state lock so
// reads and admissions stay available; transactions admitted meanwhile stay
// pooled for the next block. If ctx is cancelled or the tail moves before
// the block is committed, nothing changes.
func (f *FullNode) MineTransactions(ctx context.Context, minerAddress string) (*model.Block, error) {
	f.mining.Lock()
	defer f.mining.Unlock()

	f.m.RLock()
	tail := f.blockchain.Tail()
	if tail == nil {
		f.m.RUnlock()
		return nil, model.ErrEmptyChain
	}
	prevHash := tail.ContentHash()
	txs := make([]*model.Transaction, 0, f.txPool.Len()+1)
	for _, tx := range f.txPool.Txs {
		c := &model.Transaction{}
		deepCopy(c, tx)
		txs = append(txs, c)
	}
	f.m.RUnlock()

	reward, err := model.NewRewardTransaction(minerAddress, f.config.MINING_REWARD)
	if err != nil {
		return nil, err
	}
	txs = append(txs, reward)

	// Mining is a really heavy task.
	block, err := utils.CreateNewBlock(ctx, txs, prevHash, f.config.TARGET, f.config.GENESIS_DIFFICULTY)
	if err != nil {
		return nil, err
	}

	f.m.Lock()
	defer f.m.Unlock()
	if f.blockchain.Tail().ContentHash() != prevHash {
		return nil, fmt.Errorf("%w: tail changed while mining", model.ErrStaleBlock)
	}
	if err := f.commitBlock(block); err != nil {
		return nil, err
	}
	log.Printf("Mined block %d: %s nonce=%d txs=%d", f.blockchain.Height(), block.ContentHash(), block.Nonce, len(block.Txs))
	return block, nil
}

// AcceptBlock commits a block sealed elsewhere.
// This function should:
// 1. Validate the block.
//   a. Parent is the tail of the chain.
//   b. Difficulty matches.
//   c. Proof-of-work holds and each transaction is signed.
//   d. No transfer is committed twice and signatures verify.
//   e. Nobody is overdrawn and no more than the reward is minted.
// 2. Add to blockchain, drop its transactions from the pool and evict
//    pooled transactions it made inadmissible.
func (f *FullNode) AcceptBlock(pendingBlock *model.Block) error {
	// Lock mutex because we are changing the state of blockchain.
	f.m.Lock()
	defer f.m.Unlock()

	if err := utils.IsLinked(pendingBlock, f.blockchain.Tail()); err != nil {
		return err
	}
	b := &model.Block{}
	deepCopy(b, pendingBlock)
	return f.commitBlock(b)
}

// commitBlock validates and appends b, which the node owns. Callers hold f.m.
func (f *FullNode) commitBlock(b *model.Block) error {
	if b.Target != f.config.TARGET || b.GenesisDifficulty != f.config.GENESIS_DIFFICULTY {
		return fmt.Errorf("%w: difficulty %d/%d does not match %d/%d", model.ErrInvalidBlock,
			b.GenesisDifficulty, b.Target, f.config.GENESIS_DIFFICULTY, f.config.TARGET)
	}
	if err := b.Verify(); err != nil {
		return err
	}
	if err := utils.IsValidBlockTransactions(b, f.blockchain, f.verifier); err != nil {
		return err
	}
	// Make sure the block leaves the ledger consistent before touching the chain.
	l := utils.BuildLedger(f.blockchain.Blocks)
	if err := utils.ApplyBlock(b, l, f.config.MINING_REWARD); err != nil {
		return err
	}

	b.Sealed = true
	f.blockchain.Append(b)
	f.txPool.Remove(b.Txs)

	// Whatever the block spent may have made pooled transactions unaffordable.
	pool, dropped := utils.PrunePool(f.txPool, f.blockchain, f.verifier)
	for _, tx := range dropped {
		log.Println("Evicted transaction:", tx)
	}
	f.txPool = pool
	return nil
}

// VerifyChain re-checks linkage and proof-of-work of the committed chain.
func (f *FullNode) VerifyChain() error {
	f.m.RLock()
	defer f.m.RUnlock()
	return utils.VerifyChain(f.blockchain.Blocks)
}

// Blocks returns a deep copy of the committed chain.
func (f *FullNode) Blocks() []*model.Block {
	f.m.RLock()
	defer f.m.RUnlock()
	var blocks []*model.Block
	deepCopy(&blocks, &f.blockchain.Blocks)
	return blocks
}

// PendingTransactions returns a deep copy of the pool.
func (f *FullNode) PendingTransactions() []*model.Transaction {
	f.m.RLock()
	defer f.m.RUnlock()
	var txs []*model.Transaction
	deepCopy(&txs, &f.txPool.Txs)
	return txs
}

// Ledger returns the balances of every address on the committed chain.
func (f *FullNode) Ledger() *model.Ledger {
	f.m.RLock()
	defer f.m.RUnlock()
	return utils.BuildLedger(f.blockchain.Blocks)
}

func (f *FullNode) Height() int64 {
	f.m.RLock()
	defer f.m.RUnlock()
	return f.blockchain.Height()
}

func (f *FullNode) ID() string {
	return f.uuid
}

func (f *FullNode) Config() config.AppConfig {
	return f.config
}

func deepCopy(to interface{}, from interface{}) {
	if err := copier.CopyWithOption(to, from, copier.Option{DeepCopy: true}); err != nil {
		// Only plain exported structs are copied here.
		panic("full_node: snapshot copy failed: " + err.Error())
	}
}
