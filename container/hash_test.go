package container_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skita-dev/skita/container"
)

func TestHashPlaintext_KnownVector(t *testing.T) {
	t.Parallel()

	h := container.HashPlaintext([]byte("hello"))
	require.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", container.HashHex(h))
	require.Len(t, container.HashHex(h), 64)
}

func TestHashesEqual(t *testing.T) {
	t.Parallel()

	a := container.HashPlaintext([]byte("same"))
	b := container.HashPlaintext([]byte("same"))
	c := container.HashPlaintext([]byte("different"))

	require.True(t, container.HashesEqual(a, b))
	require.False(t, container.HashesEqual(a, c))
}
