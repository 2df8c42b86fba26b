package kdf

import (
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"
)

// masterSecretLen is the fixed 32-byte output length for the master secret.
const masterSecretLen = 32

// DeriveMaster derives the 32-byte master secret from the password and salt
// using Argon2id under the given cost parameters. The result is returned
// wrapped in a LockedBuffer so callers can hold it for the lifetime of one
// encrypt/decrypt call and destroy it deterministically afterwards.
//
// Fails with ErrInvalidParams if params are not usable by this
// implementation.
func DeriveMaster(password, salt []byte, params Params) (*memguard.LockedBuffer, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("unable to derive master secret: %w", err)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("unable to derive master secret: salt must not be empty: %w", ErrInvalidParams)
	}

	raw := argon2.IDKey(password, salt, params.Iterations, params.MemoryKiB, params.Parallelism, masterSecretLen)
	defer memguard.WipeBytes(raw)

	return memguard.NewBufferFromBytes(raw), nil
}
