package utils

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Secp256k1Signer signs with an ethereum style key; its address is the
// checksummed 20 byte account address.
type Secp256k1Signer struct {
	key *ecdsa.PrivateKey
}

func GenerateSecp256k1Signer() (*Secp256k1Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Secp256k1Signer{key: key}, nil
}

// NewSecp256k1SignerFromHex loads a 0x prefixed private key.
func NewSecp256k1SignerFromHex(s string) (*Secp256k1Signer, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, err
	}
	key, err := crypto.ToECDSA(b)
	if err != nil {
		return nil, err
	}
	return &Secp256k1Signer{key: key}, nil
}

func (s *Secp256k1Signer) PrivateKeyHex() string {
	return hexutil.Encode(crypto.FromECDSA(s.key))
}

func (s *Secp256k1Signer) Address() string {
	return crypto.PubkeyToAddress(s.key.PublicKey).Hex()
}

// Sign produces a 65 byte recoverable signature over Keccak256(msg).
func (s *Secp256k1Signer) Sign(msg []byte) ([]byte, error) {
	return crypto.Sign(crypto.Keccak256(msg), s.key)
}

// Secp256k1Verifier recovers the signing address and compares it.
type Secp256k1Verifier struct{}

func (Secp256k1Verifier) Verify(address string, msg, sig []byte) bool {
	if !common.IsHexAddress(address) || len(sig) != crypto.SignatureLength {
		return false
	}
	pub, err := crypto.SigToPub(crypto.Keccak256(msg), sig)
	if err != nil {
		return false
	}
	return crypto.PubkeyToAddress(*pub) == common.HexToAddress(address)
}

// IsSecp256k1Address reports whether address looks like an account address.
func IsSecp256k1Address(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// AnyVerifier routes to the scheme matching the address format.
type AnyVerifier struct{}

func (AnyVerifier) Verify(address string, msg, sig []byte) bool {
	if IsSecp256k1Address(address) {
		return Secp256k1Verifier{}.Verify(address, msg, sig)
	}
	return RSAVerifier{}.Verify(address, msg, sig)
}
