package model

// Signer is the identity that authorizes transfers out of its address.
type Signer interface {
	// Address is the public identity compared against a transaction's sender.
	Address() string
	// Sign returns a signature over msg.
	Sign(msg []byte) ([]byte, error)
}

// Verifier checks a signature made by the owner of address.
type Verifier interface {
	Verify(address string, msg, sig []byte) bool
}
