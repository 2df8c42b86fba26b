package kdf

import (
	"errors"
	"fmt"
)

// Params carries the Argon2id cost parameters embedded in a container
// header.
type Params struct {
	// MemoryKiB is the memory cost in KiB.
	MemoryKiB uint32
	// Iterations is the number of passes over memory.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
}

// DefaultParams returns the Argon2id cost new containers are written
// with: 64MiB of memory, 3 iterations, parallelism 4.
func DefaultParams() Params {
	return Params{
		MemoryKiB:   65536,
		Iterations:  3,
		Parallelism: 4,
	}
}

// ErrInvalidParams is raised when the Argon2id parameters are unusable.
var ErrInvalidParams = errors.New("invalid kdf parameters")

// minMemoryKiB is the smallest memory cost argon2 will accept without
// degrading to a parameter set that provides no meaningful hardness.
const minMemoryKiB = 8

// Validate rejects parameter combinations the KDF can't meaningfully honor.
func (p Params) Validate() error {
	if p.MemoryKiB < minMemoryKiB {
		return fmt.Errorf("memory cost below minimum of %dKiB: %w", minMemoryKiB, ErrInvalidParams)
	}
	if p.Iterations == 0 {
		return fmt.Errorf("iterations must be at least 1: %w", ErrInvalidParams)
	}
	if p.Parallelism == 0 {
		return fmt.Errorf("parallelism must be at least 1: %w", ErrInvalidParams)
	}
	return nil
}
