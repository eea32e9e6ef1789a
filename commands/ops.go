package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Operation int

const (
	DEFAULT Operation = iota
	// Start mining, infinite loop until explicit stop.
	START
	// Stop mining completely.
	STOP
	// Mine a single block in the foreground.
	MINE
	// Print the balance of an address, our own when none is given.
	BALANCE
	// Print the address of this node's key.
	MY_ADDR
	// Sign and submit a transfer from this node's key.
	TRANSFER
	// List transactions waiting in the pool.
	PENDING
	// Re-check linkage and proof-of-work of the whole chain.
	VERIFY
	// Render the last blocks of the chain.
	SHOW
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
	// Parsed amount of a TRANSFER.
	Amount int64
	// Parsed depth of a SHOW.
	Depth int
}

func (c Command) IsValid() bool {
	return c.parseArgs() == nil
}

// parseArgs checks the argument count of c.Op and fills the numeric fields.
func (c *Command) parseArgs() error {
	switch c.Op {
	case START, STOP, MINE, MY_ADDR, PENDING, VERIFY:
		if len(c.Args) != 0 {
			return errors.New("takes no arguments")
		}
	case BALANCE:
		if len(c.Args) > 1 {
			return errors.New("takes at most one address")
		}
	case TRANSFER:
		if len(c.Args) != 2 {
			return errors.New("usage: transfer <address> <amount>")
		}
		v, err := strconv.ParseInt(c.Args[1], 10, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("amount %q is not a positive integer", c.Args[1])
		}
		c.Amount = v
	case SHOW:
		if len(c.Args) != 1 {
			return errors.New("usage: show <depth>")
		}
		d, err := strconv.Atoi(c.Args[0])
		if err != nil || d < 0 {
			return fmt.Errorf("depth %q is not a non-negative integer", c.Args[0])
		}
		c.Depth = d
	default:
		return errors.New("unknown operation")
	}
	return nil
}

// From string, create
func CreateCommand(s string) (Command, error) {
	// split command by space.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "start":
		cmd.Op = START
	case "stop":
		cmd.Op = STOP
	case "mine":
		cmd.Op = MINE
	case "balance":
		cmd.Op = BALANCE
	case "my_addr":
		cmd.Op = MY_ADDR
	case "transfer":
		cmd.Op = TRANSFER
	case "pending":
		cmd.Op = PENDING
	case "verify":
		cmd.Op = VERIFY
	case "show":
		cmd.Op = SHOW
	}
	cmd.Args = ss[1:]
	if err := cmd.parseArgs(); err != nil {
		return Command{}, fmt.Errorf("invalid command: %w", err)
	}
	return cmd, nil
}
