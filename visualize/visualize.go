package visualize

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/bradleyjkemp/memviz"
)

// We re-define the visualize model here so the graph only carries what is
// worth looking at, with long hashes shortened.
type transaction struct {
	hash      string
	sender    string
	recipient string
	amount    int64
}

type block struct {
	hash     string
	prevHash string
	txs      []transaction
	nonce    int64
	height   int64
	next     *block
}

// The hashes and addresses are just too long to render, instead we take only first 3 and last 3
// characters and replace the middle part with '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

func txToTx(tx *model.Transaction) transaction {
	sender := "<reward>"
	if !tx.IsReward() {
		sender = shortenString(tx.Sender)
	}
	return transaction{
		hash:      shortenString(tx.ContentHash()),
		sender:    sender,
		recipient: shortenString(tx.Recipient),
		amount:    tx.Amount,
	}
}

func blockToblock(b *model.Block, height int64) *block {
	n := &block{
		hash:     shortenString(b.ContentHash()),
		prevHash: shortenString(b.PrevHash),
		nonce:    b.Nonce,
		height:   height,
	}
	for i := 0; i < len(b.Txs); i++ {
		n.txs = append(n.txs, txToTx(b.Txs[i]))
	}
	return n
}

// Given the committed chain, link the last d+1 blocks from oldest to newest.
func constructData(blocks []*model.Block, d int) *block {
	start := len(blocks) - 1 - d
	if start < 0 {
		start = 0
	}
	var head, prev *block
	for i := start; i < len(blocks); i++ {
		n := blockToblock(blocks[i], int64(i))
		if prev == nil {
			head = n
		} else {
			prev.next = n
		}
		prev = n
	}
	return head
}

// Entry to this package, where:
// blocks: the committed chain as tracked by the full node.
// d: how many blocks before the tail to include.
// id: unique id of the full node.
// dir: output directory.
// The graphviz source is always written; a png is produced when dot is installed.
func Render(blocks []*model.Block, d int, id string, dir string) (string, error) {
	buf := &bytes.Buffer{}

	chain := constructData(blocks, d)
	memviz.Map(buf, chain)

	// Write the parsed data to disk
	fileName := filepath.Join(dir, "chaindata-"+id+".dot")
	if err := os.WriteFile(fileName, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	outputName := filepath.Join(dir, "rendered-chain-"+id+".png")
	if err := exec.Command("dot", "-Tpng", fileName, "-o", outputName).Run(); err != nil {
		return fileName, nil
	}
	return outputName, nil
}
