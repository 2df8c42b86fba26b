// Package kdf derives the master secret from a password and the per-chunk
// subkey/nonce schedule from that master secret.
//
// DeriveMaster is the only fallible, expensive operation in this package;
// DeriveChunkKey and DeriveChunkNonce are pure, infallible functions of
// their inputs so that chunk processing can be parallelized or resumed
// without touching the password again.
package kdf
