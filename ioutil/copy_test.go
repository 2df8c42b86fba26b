package ioutil

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimitCopy(t *testing.T) {
	t.Parallel()

	t.Run("nil writer", func(t *testing.T) {
		t.Parallel()

		n, err := LimitCopy(nil, strings.NewReader("test"), 1024)
		require.Error(t, err)
		require.Zero(t, n)
	})

	t.Run("nil reader", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		n, err := LimitCopy(&out, nil, 1024)
		require.Error(t, err)
		require.Zero(t, n)
	})

	t.Run("under limit", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		n, err := LimitCopy(&out, strings.NewReader("hello"), 1024)
		require.NoError(t, err)
		require.Equal(t, uint64(5), n)
		require.Equal(t, "hello", out.String())
	})

	t.Run("exactly at limit", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		n, err := LimitCopy(&out, strings.NewReader("hello"), 5)
		require.NoError(t, err)
		require.Equal(t, uint64(5), n)
	})

	t.Run("over limit", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer
		_, err := LimitCopy(&out, strings.NewReader(strings.Repeat("A", 64*1024)), 1024)
		require.ErrorIs(t, err, ErrTruncatedCopy)
	})
}
