// Package pipeline drives a .skita container end to end: Encrypt reads
// plaintext and produces a framed container, Decrypt reverses it and
// re-verifies the whole-plaintext hash. It owns no wire format or
// cryptographic primitive itself — those are crypto/kdf, crypto/aead, and
// container's job — only the step sequence, progress reporting, and the
// cooperative cancellation points between chunks.
package pipeline
