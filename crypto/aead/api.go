// Package aead implements the bounded, single-chunk AEAD codec: encrypt or
// decrypt one chunk of at most a few MiB under an algorithm and a
// (key, nonce) pair supplied by the caller. Associated data is always
// empty; chunk framing and binding is the container package's job.
package aead

import (
	"errors"
	"fmt"

	"github.com/skita-dev/skita/crypto/aead/internal/aesgcm"
	"github.com/skita-dev/skita/crypto/aead/internal/chacha"
)

// Algorithm identifies a chunk cipher suite, matching the container
// header's 1-byte algorithm id.
type Algorithm uint8

const (
	// AES256GCM is the mandatory default cipher suite.
	AES256GCM Algorithm = 0
	// ChaCha20Poly1305 is the reserved, optional cipher suite.
	ChaCha20Poly1305 Algorithm = 1
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AES256GCM:
		return "AES-256-GCM"
	case ChaCha20Poly1305:
		return "ChaCha20-Poly1305"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// KeyLen is the required key size for every supported algorithm.
const KeyLen = 32

// NonceLen is the required nonce size for every supported algorithm.
const NonceLen = 12

// Overhead is the authentication tag size appended to every sealed chunk.
const Overhead = 16

// ErrUnsupportedAlgorithm is raised when the requested algorithm id has no
// registered implementation.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// ChunkCodec seals and opens one bounded chunk under a given key and nonce.
type ChunkCodec interface {
	Seal(key, nonce, plaintext []byte) ([]byte, error)
	Open(key, nonce, ciphertext []byte) ([]byte, error)
}

type codecFuncs struct {
	seal func(key, nonce, plaintext []byte) ([]byte, error)
	open func(key, nonce, ciphertext []byte) ([]byte, error)
}

func (c codecFuncs) Seal(key, nonce, plaintext []byte) ([]byte, error) {
	return c.seal(key, nonce, plaintext)
}

func (c codecFuncs) Open(key, nonce, ciphertext []byte) ([]byte, error) {
	return c.open(key, nonce, ciphertext)
}

var registry = map[Algorithm]codecFuncs{
	AES256GCM:        {seal: aesgcm.Seal, open: aesgcm.Open},
	ChaCha20Poly1305: {seal: chacha.Seal, open: chacha.Open},
}

// ForAlgorithm looks up the ChunkCodec implementation for the given
// algorithm id. It's the single dispatch point both the pipeline and any
// interop test harness should use.
func ForAlgorithm(id Algorithm) (ChunkCodec, error) {
	codec, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("algorithm id %d: %w", uint8(id), ErrUnsupportedAlgorithm)
	}
	return codec, nil
}

// Supported reports whether id has a registered implementation.
func Supported(id Algorithm) bool {
	_, ok := registry[id]
	return ok
}
