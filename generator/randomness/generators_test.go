package randomness

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	t.Parallel()

	b1, err := Bytes(32)
	require.NoError(t, err)
	require.Len(t, b1, 32)

	b2, err := Bytes(32)
	require.NoError(t, err)
	require.NotEqual(t, b1, b2, "two successive draws must not collide")
}

func TestBytes_Zero(t *testing.T) {
	t.Parallel()

	b, err := Bytes(0)
	require.NoError(t, err)
	require.Empty(t, b)
}
