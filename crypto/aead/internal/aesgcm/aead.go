// Package aesgcm provides the mandatory AES-256-GCM chunk cipher.
package aesgcm

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// KeyLen is the required key size for AES-256.
const KeyLen = 32

// NonceLen is the GCM nonce size used for every chunk.
const NonceLen = 12

// Overhead is the authentication tag size appended to the ciphertext.
const Overhead = 16

// Seal encrypts plaintext under key and nonce. The returned slice is
// ciphertext with the 16-byte tag appended; no associated data is bound.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != NonceLen {
		return nil, errors.New("aesgcm: nonce must be 12 bytes")
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
		return nil, errors.New("aesgcm: nonce must be 12 bytes")
	}

	// A non-nil dst makes an empty chunk open to an empty slice, not nil.
	plaintext, err := aead.Open([]byte{}, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: unable to authenticate chunk: %w", err)
	}
	return plaintext, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLen {
		return nil, errors.New("aesgcm: key must be 32 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: unable to initialize block cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("aesgcm: unable to initialize GCM: %w", err)
	}
	return aead, nil
}
