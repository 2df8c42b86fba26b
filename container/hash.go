package container

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPlaintext computes the whole-plaintext SHA-256 digest: one hash
// over the concatenation of every cleartext chunk, in order, which is
// equivalent to hashing the original input in one pass.
func HashPlaintext(plaintext []byte) [32]byte {
	return sha256.Sum256(plaintext)
}

// HashHex formats a plaintext hash as 64 lowercase hex characters.
func HashHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// HashesEqual compares two plaintext hashes in constant time for the
// final integrity comparison.
func HashesEqual(a, b [32]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
