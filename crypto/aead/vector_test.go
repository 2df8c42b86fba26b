package aead_test

import (
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skita-dev/skita/crypto/aead"
	"github.com/skita-dev/skita/crypto/kdf"
)

type hexByteSlice []byte

//nolint:wrapcheck // No need to wrap the error
func (m *hexByteSlice) UnmarshalJSON(b []byte) error {
	var data string
	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	// Decode hex
	raw, err := hex.DecodeString(data)
	*m = raw
	return err
}

type vectorTest struct {
	Operation    string       `json:"@type"`
	Name         string       `json:"name"`
	Algorithm    uint8        `json:"algorithm"`
	ChunkIndex   uint32       `json:"chunk-index"`
	MasterSecret hexByteSlice `json:"master-secret"`
	MasterNonce  hexByteSlice `json:"master-nonce"`
	Key          hexByteSlice `json:"key"`
	Nonce        hexByteSlice `json:"nonce"`
	PlainText    hexByteSlice `json:"plaintext"`
	CipherText   hexByteSlice `json:"ciphertext"`
}

type vectorManifest struct {
	Name  string        `json:"name"`
	Tests []*vectorTest `json:"tests"`
}

//nolint:paralleltest // Disable parallel tests for vector testing
func TestVector(t *testing.T) {
	testDataFs := os.DirFS("./testdata")

	// Open manifest
	mf, err := testDataFs.Open("chunk.vectors.json")
	if err != nil {
		t.Fatal(err)
	}
	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			t.Fatal(err)
		}
	}(mf)

	m := &vectorManifest{}
	if err := json.NewDecoder(io.LimitReader(mf, 1<<20)).Decode(m); err != nil {
		t.Fatal(err)
	}

	for _, tc := range m.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			// The manifest key and nonce must match the schedule
			// derivation from the manifest master secret and nonce, so a
			// vector regression pins both the codec and the schedule.
			key := kdf.DeriveChunkKey(tc.MasterSecret, tc.ChunkIndex)
			require.Equal(t, []byte(tc.Key), key[:])

			var mn [kdf.MasterNonceLen]byte
			copy(mn[:], tc.MasterNonce)
			nonce := kdf.DeriveChunkNonce(mn, tc.ChunkIndex)
			require.Equal(t, []byte(tc.Nonce), nonce[:])

			codec, err := aead.ForAlgorithm(aead.Algorithm(tc.Algorithm))
			require.NoError(t, err)

			sealed, err := codec.Seal(tc.Key, tc.Nonce, tc.PlainText)
			require.NoError(t, err)
			require.Equal(t, []byte(tc.CipherText), sealed)

			opened, err := codec.Open(tc.Key, tc.Nonce, tc.CipherText)
			require.NoError(t, err)
			require.Equal(t, []byte(tc.PlainText), opened)
		})
	}
}
