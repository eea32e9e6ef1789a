package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSigner signs by prefixing the message with its address.
type fakeSigner struct {
	addr string
	err  error
}

func (s fakeSigner) Address() string { return s.addr }

func (s fakeSigner) Sign(msg []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]byte(s.addr+":"), msg...), nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(address string, msg, sig []byte) bool {
	return string(sig) == address+":"+string(msg)
}

func TestNewTransactionRejectsBadArguments(t *testing.T) {
	_, err := NewTransaction("alice", "", 10)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTransaction("alice", "bob", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewTransaction("alice", "bob", -5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	tx, err := NewTransaction("alice", "bob", 5)
	require.NoError(t, err)
	assert.Empty(t, tx.Signature)
	assert.NotZero(t, tx.Timestamp)
}

func TestContentHashIgnoresSignature(t *testing.T) {
	tx := &Transaction{Sender: "alice", Recipient: "bob", Amount: 40, Timestamp: 1700000000}
	same := &Transaction{Sender: "alice", Recipient: "bob", Amount: 40, Timestamp: 1700000000}

	unsigned := tx.ContentHash()
	require.NoError(t, tx.Sign(fakeSigner{addr: "alice"}))

	assert.Equal(t, unsigned, tx.ContentHash())
	assert.Equal(t, unsigned, same.ContentHash())
	assert.Len(t, unsigned, 64)

	other := &Transaction{Sender: "alice", Recipient: "bob", Amount: 41, Timestamp: 1700000000}
	assert.NotEqual(t, unsigned, other.ContentHash())
}

func TestContentHashIsCanonicalJSON(t *testing.T) {
	tx := &Transaction{Recipient: "bob", Amount: 100, Timestamp: 7}
	assert.Equal(t,
		`{"amount":100,"recipient":"bob","sender":null,"timestamp":7}`,
		string(canonicalBytes(tx.CanonicalFields())))
}

func TestSign(t *testing.T) {
	tx, err := NewTransaction("alice", "bob", 10)
	require.NoError(t, err)

	assert.ErrorIs(t, tx.Sign(fakeSigner{addr: "mallory"}), ErrUnauthorizedSigner)
	assert.Empty(t, tx.Signature)

	boom := errors.New("boom")
	assert.ErrorIs(t, tx.Sign(fakeSigner{addr: "alice", err: boom}), boom)

	require.NoError(t, tx.Sign(fakeSigner{addr: "alice"}))
	assert.NotEmpty(t, tx.Signature)
	assert.True(t, tx.VerifySignature(fakeVerifier{}))

	tx.Amount = 11
	assert.False(t, tx.VerifySignature(fakeVerifier{}))
}

func TestRewardCannotBeSigned(t *testing.T) {
	reward, err := NewRewardTransaction("miner", 100)
	require.NoError(t, err)
	assert.True(t, reward.IsReward())
	assert.ErrorIs(t, reward.Sign(fakeSigner{addr: ""}), ErrUnauthorizedSigner)
}

func TestIsValid(t *testing.T) {
	tx, err := NewTransaction("alice", "bob", 10)
	require.NoError(t, err)

	ok, err := tx.IsValid()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrMissingSignature)

	require.NoError(t, tx.Sign(fakeSigner{addr: "alice"}))
	ok, err = tx.IsValid()
	assert.True(t, ok)
	assert.NoError(t, err)

	reward, err := NewRewardTransaction("miner", 100)
	require.NoError(t, err)
	ok, err = reward.IsValid()
	assert.True(t, ok)
	assert.NoError(t, err)
}
