package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/full_node"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/Luismorlan/ledger_in_go/visualize"
	"github.com/Luismorlan/ledger_in_go/wallet"
	"github.com/fatih/color"
)

var (
	configPath *string
	keyPath    *string
	newKey     *bool
)

func init() {
	configPath = flag.String("config_path", "full_node/cmd/config.yaml", "path to full node config")
	keyPath = flag.String("key_path", "node.pem", "path to the node's RSA private key")
	newKey = flag.Bool("new_key", false, "generate a new key and save it at key_path")
}

// Read commands from stdin and hand them to the handler.
func ParseCommand(cmd chan commands.Command) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		c, err := commands.CreateCommand(scanner.Text())
		if err != nil {
			color.Red("%v", err)
			fmt.Print("> ")
			continue
		}
		cmd <- c
	}
	close(cmd)
}

func HandleCommand(cmd chan commands.Command, node *full_node.FullNode, miner *full_node.Miner, w *wallet.Wallet) {
	for c := range cmd {
		switch c.Op {
		case commands.START:
			if err := miner.Start(); err != nil {
				color.Yellow("%v", err)
			}
		case commands.STOP:
			if err := miner.Stop(); err != nil {
				color.Yellow("%v", err)
			}
		case commands.MINE:
			b, err := miner.MineOnce(context.Background())
			if err != nil {
				color.Red("mining failed: %v", err)
				break
			}
			color.Green("mined block %s with nonce %d", b.ContentHash(), b.Nonce)
		case commands.BALANCE:
			address := w.Address()
			if len(c.Args) == 1 {
				address = c.Args[0]
			}
			color.Cyan("%d", node.BalanceOf(address))
		case commands.MY_ADDR:
			color.Cyan("%s", w.Address())
		case commands.TRANSFER:
			tx, err := w.TransferMoney(c.Args[0], c.Amount)
			if err != nil {
				color.Red("transfer rejected: %v", err)
				break
			}
			color.Green("pooled %s", tx.ContentHash())
		case commands.PENDING:
			for _, tx := range node.PendingTransactions() {
				fmt.Println(tx)
			}
		case commands.VERIFY:
			if err := node.VerifyChain(); err != nil {
				color.Red("%v", err)
				break
			}
			color.Green("chain of height %d is valid", node.Height())
		case commands.SHOW:
			out, err := visualize.Render(node.Blocks(), c.Depth, node.ID(), node.Config().RENDER_DIR)
			if err != nil {
				color.Red("%v", err)
				break
			}
			color.Green("rendered to %s", out)
		}
		fmt.Print("> ")
	}
	if miner.IsRunning() {
		_ = miner.Stop()
	}
}

func main() {
	flag.Parse()

	cfg, err := config.ParseAppConfig(*configPath)
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}
	key, err := utils.ParseKeyFile(*keyPath, *newKey)
	if err != nil {
		log.Fatal("failed to load key: ", err)
	}
	log.Printf("%+v", cfg)

	signer := utils.NewRSASigner(key)
	node := full_node.NewFullNode(cfg, utils.AnyVerifier{})
	miner := full_node.NewMiner(node, signer.Address())
	w := wallet.NewWallet(signer, node)
	log.Println("Node", node.ID(), "ready")

	cmd := make(chan commands.Command)
	go ParseCommand(cmd)
	HandleCommand(cmd, node, miner, w)
}
