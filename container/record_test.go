package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skita-dev/skita/container"
)

func TestAppendReadRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	rec := container.Record{Ciphertext: []byte("ciphertext-and-tag")}
	for i := range rec.Nonce {
		rec.Nonce[i] = byte(i)
	}

	buf := container.AppendRecord([]byte("prefix-bytes"), rec)
	got, consumed, err := container.ReadRecord(buf, len("prefix-bytes"))
	require.NoError(t, err)
	require.Equal(t, len(buf), consumed)
	require.Equal(t, rec.Nonce, got.Nonce)
	require.Equal(t, rec.Ciphertext, got.Ciphertext)
}

func TestReadRecord_TruncatedPrefix(t *testing.T) {
	t.Parallel()

	buf := container.AppendRecord(nil, container.Record{Ciphertext: []byte("x")})
	_, _, err := container.ReadRecord(buf[:8], 0)
	require.ErrorIs(t, err, container.ErrMalformedHeader)
}

func TestReadRecord_TruncatedPayload(t *testing.T) {
	t.Parallel()

	buf := container.AppendRecord(nil, container.Record{Ciphertext: []byte("0123456789")})
	_, _, err := container.ReadRecord(buf[:len(buf)-3], 0)
	require.ErrorIs(t, err, container.ErrMalformedHeader)
}

func TestAppendRecord_MultipleInOrder(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = container.AppendRecord(buf, container.Record{Ciphertext: []byte("aaa")})
	buf = container.AppendRecord(buf, container.Record{Ciphertext: []byte("bb")})

	first, off, err := container.ReadRecord(buf, 0)
	require.NoError(t, err)
	require.Equal(t, []byte("aaa"), first.Ciphertext)

	second, off2, err := container.ReadRecord(buf, off)
	require.NoError(t, err)
	require.Equal(t, []byte("bb"), second.Ciphertext)
	require.Equal(t, len(buf), off2)
}
