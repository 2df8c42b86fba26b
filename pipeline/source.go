package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/skita-dev/skita/container"
	"github.com/skita-dev/skita/ioutil"
)

// ReadSource buffers an entire plaintext source into memory, bounded by the
// format's 32-bit original-size field. Sources larger than 2^32 - 1 bytes
// are refused with InputTooLarge before any cryptographic work happens,
// rather than read to completion and truncated.
func ReadSource(src io.Reader) ([]byte, error) {
	var buf bytes.Buffer

	if _, err := ioutil.LimitCopy(&buf, src, math.MaxUint32); err != nil {
		if errors.Is(err, ioutil.ErrTruncatedCopy) {
			return nil, container.NewError(container.ErrKindInputTooLarge, fmt.Errorf("source exceeds the 32-bit length field: %w", err))
		}
		return nil, fmt.Errorf("unable to buffer plaintext source: %w", err)
	}

	return buf.Bytes(), nil
}

// EncryptFrom buffers src with ReadSource and encrypts it. The format hashes
// the whole plaintext up front, so the full buffering is inherent, not an
// implementation shortcut.
func EncryptFrom(ctx context.Context, src io.Reader, filename string, password []byte, opts ...Option) (Result, error) {
	plaintext, err := ReadSource(src)
	if err != nil {
		return Result{}, err
	}
	return Encrypt(ctx, plaintext, filename, password, opts...)
}
