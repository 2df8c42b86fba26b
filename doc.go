// Package skita is the engine behind the .skita encrypted container
// format: password-based, chunked, authenticated file encryption with
// end-to-end integrity verification.
//
// The engine is split into four cooperating packages. crypto/kdf derives
// the Argon2id master secret and the per-chunk key/nonce schedule.
// crypto/aead seals and opens individual chunks. container owns the binary
// header and chunk-record wire format. pipeline drives the whole
// encrypt/decrypt sequence and is the entry point most callers want.
//
// This root package only carries process-wide mode flags; it holds no
// cryptographic logic.
package skita
