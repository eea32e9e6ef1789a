package model

import (
	"encoding/hex"
	"fmt"
	"time"
)

type Transaction struct {
	// Address of the payer. Empty for a reward minted by the chain itself.
	Sender string
	// Address of the payee, never empty.
	Recipient string
	// How much value to transfer, strictly positive.
	Amount int64
	// Creation time in unix nanoseconds.
	Timestamp int64
	// Signature over ContentHash made by the sender. Not part of the hash.
	Signature []byte
}

// NewTransaction creates an unsigned transfer stamped with the current time.
func NewTransaction(sender string, recipient string, amount int64) (*Transaction, error) {
	if recipient == "" {
		return nil, fmt.Errorf("%w: recipient is empty", ErrInvalidArgument)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount %d is not positive", ErrInvalidArgument, amount)
	}
	return &Transaction{
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
		Timestamp: time.Now().UnixNano(),
	}, nil
}

// NewRewardTransaction mints amount to recipient. Rewards have no sender and
// need no signature.
func NewRewardTransaction(recipient string, amount int64) (*Transaction, error) {
	return NewTransaction("", recipient, amount)
}

// IsReward reports whether the transaction was minted by the chain.
func (t *Transaction) IsReward() bool {
	return t.Sender == ""
}

// CanonicalFields returns the hashed fields. A reward's sender is encoded as null.
func (t *Transaction) CanonicalFields() map[string]interface{} {
	var sender interface{}
	if !t.IsReward() {
		sender = t.Sender
	}
	return map[string]interface{}{
		"sender":    sender,
		"recipient": t.Recipient,
		"amount":    t.Amount,
		"timestamp": t.Timestamp,
	}
}

// ContentHash is the hex digest that gets signed.
func (t *Transaction) ContentHash() string {
	return digest(t.CanonicalFields())
}

// Sign stores signer's signature over ContentHash. Only the sender may sign.
func (t *Transaction) Sign(signer Signer) error {
	if t.IsReward() || signer.Address() != t.Sender {
		return ErrUnauthorizedSigner
	}
	sig, err := signer.Sign([]byte(t.ContentHash()))
	if err != nil {
		return err
	}
	t.Signature = sig
	return nil
}

// IsValid checks that a non-reward transaction has been signed.
func (t *Transaction) IsValid() (bool, error) {
	if !t.IsReward() && len(t.Signature) == 0 {
		return false, ErrMissingSignature
	}
	return true, nil
}

// VerifySignature checks the signature against the sender's address.
func (t *Transaction) VerifySignature(v Verifier) bool {
	if t.IsReward() {
		return true
	}
	return v.Verify(t.Sender, []byte(t.ContentHash()), t.Signature)
}

// blockFields is how a transaction appears inside a block's canonical form.
func (t *Transaction) blockFields() map[string]interface{} {
	fields := t.CanonicalFields()
	fields["signature"] = hex.EncodeToString(t.Signature)
	return fields
}

func (t *Transaction) String() string {
	from := t.Sender
	if t.IsReward() {
		from = "<reward>"
	}
	return fmt.Sprintf("%s -> %s: %d", from, t.Recipient, t.Amount)
}
