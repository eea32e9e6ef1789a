package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecp256k1SignerAndVerifier(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)
	other, err := GenerateSecp256k1Signer()
	require.NoError(t, err)

	assert.True(t, IsSecp256k1Address(signer.Address()))

	msg := []byte("ABCDEF")
	sig, err := signer.Sign(msg)
	require.NoError(t, err)

	v := Secp256k1Verifier{}
	assert.True(t, v.Verify(signer.Address(), msg, sig))
	assert.False(t, v.Verify(other.Address(), msg, sig))
	assert.False(t, v.Verify(signer.Address(), []byte("ABCDEG"), sig))
	assert.False(t, v.Verify(signer.Address(), msg, sig[:10]))
	assert.True(t, AnyVerifier{}.Verify(signer.Address(), msg, sig))
}

func TestSecp256k1SignerFromHex(t *testing.T) {
	signer, err := GenerateSecp256k1Signer()
	require.NoError(t, err)

	loaded, err := NewSecp256k1SignerFromHex(signer.PrivateKeyHex())
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), loaded.Address())

	_, err = NewSecp256k1SignerFromHex("nope")
	assert.Error(t, err)
}
