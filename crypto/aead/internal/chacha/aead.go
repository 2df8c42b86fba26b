// Package chacha provides the reserved ChaCha20-Poly1305 chunk cipher.
package chacha

import (
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeyLen is the required key size.
const KeyLen = chacha20poly1305.KeySize

// NonceLen is the nonce size used for every chunk.
const NonceLen = chacha20poly1305.NonceSize

// Overhead is the authentication tag size appended to the ciphertext.
const Overhead = chacha20poly1305.Overhead

// Seal encrypts plaintext under key and nonce. The returned slice is
// ciphertext with the 16-byte tag appended; no associated data is bound.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceLen {
		return nil, errors.New("chacha: nonce must be 12 bytes")
	}

	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts ciphertext (with its trailing tag) under key and nonce.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceLen {
		return nil, errors.New("chacha: nonce must be 12 bytes")
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("chacha: unable to authenticate chunk: %w", err)
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLen {
		return nil, errors.New("chacha: key must be 32 bytes")
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("chacha: unable to initialize AEAD: %w", err)
	}
	return aead, nil
}
