package kdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveMaster(t *testing.T) {
	t.Parallel()

	salt := []byte("01234567890123456789012345678901")
	params := DefaultParams()

	lb, err := DeriveMaster([]byte("correct horse battery staple"), salt, params)
	require.NoError(t, err)
	require.NotNil(t, lb)
	defer lb.Destroy()

	require.Len(t, lb.Bytes(), masterSecretLen)
}

func TestDeriveMaster_Deterministic(t *testing.T) {
	t.Parallel()

	salt := []byte("01234567890123456789012345678901")
	params := DefaultParams()

	lb1, err := DeriveMaster([]byte("pw"), salt, params)
	require.NoError(t, err)
	defer lb1.Destroy()

	lb2, err := DeriveMaster([]byte("pw"), salt, params)
	require.NoError(t, err)
	defer lb2.Destroy()

	require.Equal(t, lb1.Bytes(), lb2.Bytes())
}

func TestDeriveMaster_DifferentPasswordsDiverge(t *testing.T) {
	t.Parallel()

	salt := []byte("01234567890123456789012345678901")
	params := DefaultParams()

	lb1, err := DeriveMaster([]byte("alpha"), salt, params)
	require.NoError(t, err)
	defer lb1.Destroy()

	lb2, err := DeriveMaster([]byte("beta"), salt, params)
	require.NoError(t, err)
	defer lb2.Destroy()

	require.NotEqual(t, lb1.Bytes(), lb2.Bytes())
}

func TestDeriveMaster_InvalidParams(t *testing.T) {
	t.Parallel()

	salt := []byte("01234567890123456789012345678901")

	_, err := DeriveMaster([]byte("pw"), salt, Params{MemoryKiB: 0, Iterations: 1, Parallelism: 1})
	require.ErrorIs(t, err, ErrInvalidParams)
}

func TestDeriveMaster_EmptySalt(t *testing.T) {
	t.Parallel()

	_, err := DeriveMaster([]byte("pw"), nil, DefaultParams())
	require.Error(t, err)
}
