package pipeline

import (
	"context"
	"errors"
	"fmt"

	skita "github.com/skita-dev/skita"
	"github.com/skita-dev/skita/container"
	"github.com/skita-dev/skita/crypto/aead"
	"github.com/skita-dev/skita/crypto/kdf"
)

// DecryptResult is the outcome of a successful Decrypt call.
type DecryptResult struct {
	Plaintext        []byte
	OriginalFilename string
	Verified         bool
	PlaintextHashHex string
}

// Decrypt parses the header, derives the master secret from its salt and
// KDF parameters, opens every chunk record in order under its derived
// subkey, and, for a container carrying an embedded hash, re-hashes the
// assembled plaintext and compares it against that hash in constant time.
// ctx is checked for cancellation between chunks only.
func Decrypt(ctx context.Context, data []byte, password []byte, opts ...Option) (DecryptResult, error) {
	iv := newInvocation()
	iv.enter(Processing)

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	result, err := decrypt(ctx, data, password, s)
	if err != nil {
		if cerr, ok := err.(*container.Error); ok && cerr.Kind == container.ErrKindCancelled {
			iv.enter(Cancelled)
		} else {
			iv.enter(Error)
			iv.logTerminalError("decrypt", err)
		}
		return DecryptResult{}, err
	}

	iv.enter(Success)
	return result, nil
}

func decrypt(ctx context.Context, data []byte, password []byte, s settings) (DecryptResult, error) {
	s.progress(0, StageHashing)

	header, offset, err := container.Decode(data)
	if err != nil {
		return DecryptResult{}, err
	}
	if skita.InStrictVersionMode() && !header.HasHash {
		return DecryptResult{}, container.NewError(container.ErrKindUnsupportedVersion, errors.New("legacy container without embedded plaintext hash refused in strict version mode"))
	}

	codec, err := aead.ForAlgorithm(header.Algorithm)
	if err != nil {
		return DecryptResult{}, container.NewError(container.ErrKindUnsupportedAlgorithm, err)
	}

	s.progress(12, StageKeyDerivation)
	master, err := kdf.DeriveMaster(password, header.Salt[:], header.KDFParams)
	if err != nil {
		return DecryptResult{}, container.NewError(container.ErrKindKDFFailure, err)
	}
	defer master.Destroy()
	s.progress(20, StageKeyDerivation)

	plaintext := make([]byte, 0, header.OriginalSize)
	for i := uint32(0); i < header.TotalChunks; i++ {
		select {
		case <-ctx.Done():
			return DecryptResult{}, container.NewError(container.ErrKindCancelled, ctx.Err())
		default:
		}

		rec, next, err := container.ReadRecord(data, offset)
		if err != nil {
			return DecryptResult{}, err
		}
		offset = next

		key := kdf.DeriveChunkKey(master.Bytes(), i)
		pt, err := codec.Open(key[:], rec.Nonce[:], rec.Ciphertext)
		if err != nil {
			wrapped := fmt.Errorf("chunk %d: %w", i, err)
			if i == 0 {
				wrapped = fmt.Errorf("chunk 0: %w (wrong password, corrupted file, or a mismatched algorithm id in the header)", err)
			}
			return DecryptResult{}, container.NewError(container.ErrKindAuthFailure, wrapped)
		}
		plaintext = append(plaintext, pt...)

		percent := 20 + int(float64(i+1)/float64(header.TotalChunks)*70)
		s.progress(percent, StageChunking)
	}

	result := DecryptResult{
		Plaintext:        plaintext,
		OriginalFilename: header.Filename,
	}

	if header.HasHash {
		s.progress(95, StageHashing)
		actual := container.HashPlaintext(plaintext)
		if !container.HashesEqual(actual, header.PlaintextHash) {
			return DecryptResult{}, container.NewError(container.ErrKindIntegrityFailure, nil)
		}
		result.Verified = true
		result.PlaintextHashHex = container.HashHex(actual)
	}
	// v1 containers carry no embedded hash: Verified stays false because
	// no integrity check was actually performed.

	s.progress(100, StageFinalizing)
	return result, nil
}
