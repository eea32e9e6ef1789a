package model

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// canonicalBytes encodes fields as JSON. encoding/json writes map keys in
// sorted order, so equal mappings always produce identical bytes.
func canonicalBytes(fields map[string]interface{}) []byte {
	b, err := json.Marshal(fields)
	if err != nil {
		// Canonical fields only hold strings, integers, nil and nested maps.
		panic("model: canonical encoding failed: " + err.Error())
	}
	return b
}

// digest returns the upper-case hex SHA-256 of the canonical encoding.
func digest(fields map[string]interface{}) string {
	sum := sha256.Sum256(canonicalBytes(fields))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
