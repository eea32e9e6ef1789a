package model

import "errors"

var (
	// Malformed transaction construction inputs.
	ErrInvalidArgument = errors.New("invalid argument")
	// The signer's address does not match the transaction sender.
	ErrUnauthorizedSigner = errors.New("you cannot sign this transaction")
	// A non-reward transaction carries no signature.
	ErrMissingSignature = errors.New("no signature in this transaction")
	// A transaction failed one of the admission rules.
	ErrInvalidTransaction = errors.New("not a valid transaction")
	// Sender balance is lower than the transferred amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// Target is not a positive number or the resulting difficulty cannot be met.
	ErrInvalidTarget = errors.New("invalid target")
	// The chain has no genesis block yet.
	ErrEmptyChain = errors.New("chain is empty")
	// The chain already has a genesis block.
	ErrGenesisExists = errors.New("genesis block already exists")
	// A block failed proof-of-work or linkage checks.
	ErrInvalidBlock = errors.New("invalid block")
	// The tip moved while a block was being mined on top of it.
	ErrStaleBlock = errors.New("stale block")
)
