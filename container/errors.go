// Package container implements the .skita on-disk/on-wire format: header
// encode/decode, chunk record framing, and whole-plaintext hashing. It owns
// no cryptographic primitives itself (those live in crypto/kdf and
// crypto/aead) and holds no secret material.
package container

import (
	"fmt"
)

// ErrorKind names one of the taxonomy of terminal errors a caller can
// distinguish with errors.As against *Error, without parsing messages.
type ErrorKind string

const (
	// ErrKindBadMagic means the first four bytes were not "SKTA".
	ErrKindBadMagic ErrorKind = "bad_magic"
	// ErrKindUnsupportedVersion means the version field is not recognized.
	ErrKindUnsupportedVersion ErrorKind = "unsupported_version"
	// ErrKindUnsupportedAlgorithm means the algorithm id has no implementation.
	ErrKindUnsupportedAlgorithm ErrorKind = "unsupported_algorithm"
	// ErrKindUnsupportedKDF means the KDF id has no implementation.
	ErrKindUnsupportedKDF ErrorKind = "unsupported_kdf"
	// ErrKindMalformedHeader means a length field implies data past the
	// available bytes, or a numeric field is zero where forbidden.
	ErrKindMalformedHeader ErrorKind = "malformed_header"
	// ErrKindKDFFailure means the KDF library rejected its parameters.
	ErrKindKDFFailure ErrorKind = "kdf_failure"
	// ErrKindAuthFailure means an AEAD tag failed to verify on some chunk.
	ErrKindAuthFailure ErrorKind = "auth_failure"
	// ErrKindIntegrityFailure means the v2 plaintext hash did not match
	// after every chunk decrypted successfully.
	ErrKindIntegrityFailure ErrorKind = "integrity_failure"
	// ErrKindInputTooLarge means the plaintext or filename exceeds the
	// format's 32-bit/16-bit length fields.
	ErrKindInputTooLarge ErrorKind = "input_too_large"
	// ErrKindCancelled means cooperative cancellation was honored between
	// chunks.
	ErrKindCancelled ErrorKind = "cancelled"
)

// Error wraps a terminal error with a stable Kind a caller can switch on.
type Error struct {
	Kind ErrorKind
	Err  error
}

// Error implements error.
func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is a *Error with the same Kind, so callers can
// do errors.Is(err, container.NewError(container.ErrKindBadMagic, nil)), but
// more usefully errors.Is(err, container.ErrBadMagic) against the package
// sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError wraps err with kind. err may be nil.
func NewError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Sentinel *Error values for errors.Is comparisons against a bare kind.
var (
	ErrBadMagic             = &Error{Kind: ErrKindBadMagic}
	ErrUnsupportedVersion   = &Error{Kind: ErrKindUnsupportedVersion}
	ErrUnsupportedAlgorithm = &Error{Kind: ErrKindUnsupportedAlgorithm}
	ErrUnsupportedKDF       = &Error{Kind: ErrKindUnsupportedKDF}
	ErrMalformedHeader      = &Error{Kind: ErrKindMalformedHeader}
	ErrKDFFailure           = &Error{Kind: ErrKindKDFFailure}
	ErrAuthFailure          = &Error{Kind: ErrKindAuthFailure}
	ErrIntegrityFailure     = &Error{Kind: ErrKindIntegrityFailure}
	ErrInputTooLarge        = &Error{Kind: ErrKindInputTooLarge}
	ErrCancelled            = &Error{Kind: ErrKindCancelled}
)

// malformed is a small helper for the frequent "wrap a formatting error as
// MalformedHeader" case.
func malformed(format string, args ...any) error {
	return NewError(ErrKindMalformedHeader, fmt.Errorf(format, args...))
}
