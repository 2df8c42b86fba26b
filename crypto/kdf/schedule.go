package kdf

import (
	"crypto/sha256"
	"encoding/binary"
	"strconv"
)

// ChunkKeyLen is the length of a derived per-chunk subkey.
const ChunkKeyLen = 32

// ChunkNonceLen is the length of a derived per-chunk nonce.
const ChunkNonceLen = 12

// MasterNonceLen is the length of the per-encryption master nonce.
const MasterNonceLen = 12

// masterNoncePrefixLen is how much of the master nonce contributes to each
// chunk nonce; the remaining bytes of the chunk nonce are the big-endian
// chunk index.
const masterNoncePrefixLen = 8

// DeriveChunkKey derives the subkey for chunk index from the master secret:
// SHA-256(master || "chunk-" || decimal(index)).
//
// Pure and infallible: chunk keys can be derived independently and out of
// order once the master secret is known.
func DeriveChunkKey(master []byte, index uint32) [ChunkKeyLen]byte {
	h := sha256.New()
	h.Write(master)
	h.Write([]byte("chunk-"))
	h.Write([]byte(strconv.FormatUint(uint64(index), 10)))

	var out [ChunkKeyLen]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DeriveChunkNonce derives the AEAD nonce for chunk index from the master
// nonce: masterNonce[0:8] || be32(index).
//
// Pure and infallible.
func DeriveChunkNonce(masterNonce [MasterNonceLen]byte, index uint32) [ChunkNonceLen]byte {
	var out [ChunkNonceLen]byte
	copy(out[:masterNoncePrefixLen], masterNonce[:masterNoncePrefixLen])
	binary.BigEndian.PutUint32(out[masterNoncePrefixLen:], index)
	return out
}
