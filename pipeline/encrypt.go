package pipeline

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/skita-dev/skita/container"
	"github.com/skita-dev/skita/crypto/aead"
	"github.com/skita-dev/skita/crypto/kdf"
	"github.com/skita-dev/skita/generator/randomness"
)

// Result is the outcome of a successful Encrypt call.
type Result struct {
	Container        []byte
	OutputFilename   string
	PlaintextHashHex string
}

// Encrypt hashes the whole plaintext, derives a master secret from a
// fresh salt, then seals each chunk under an independently derived subkey
// and nonce, and frames the records in ascending index order once every
// chunk is sealed. ctx is checked for
// cancellation between chunks only; seal itself is never interrupted.
func Encrypt(ctx context.Context, plaintext []byte, filename string, password []byte, opts ...Option) (Result, error) {
	iv := newInvocation()
	iv.enter(Processing)

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	result, err := encrypt(ctx, plaintext, filename, password, s)
	if err != nil {
		if cerr, ok := err.(*container.Error); ok && cerr.Kind == container.ErrKindCancelled {
			iv.enter(Cancelled)
		} else {
			iv.enter(Error)
			iv.logTerminalError("encrypt", err)
		}
		return Result{}, err
	}

	iv.enter(Success)
	return result, nil
}

func encrypt(ctx context.Context, plaintext []byte, filename string, password []byte, s settings) (Result, error) {
	if len(plaintext) > math.MaxUint32 {
		return Result{}, container.NewError(container.ErrKindInputTooLarge, fmt.Errorf("plaintext of %d bytes exceeds the 32-bit length field", len(plaintext)))
	}
	if len(filename) > math.MaxUint16 {
		return Result{}, container.NewError(container.ErrKindInputTooLarge, fmt.Errorf("filename of %d bytes exceeds the 16-bit length field", len(filename)))
	}
	if !aead.Supported(s.algorithm) {
		return Result{}, container.NewError(container.ErrKindUnsupportedAlgorithm, fmt.Errorf("algorithm id %d", uint8(s.algorithm)))
	}

	// Step 1: hash the whole plaintext (progress 0 -> 10).
	s.progress(0, StageHashing)
	hash := container.HashPlaintext(plaintext)
	s.progress(10, StageHashing)

	// Step 2: fresh salt and master nonce.
	saltBytes, err := randomness.Bytes(32)
	if err != nil {
		return Result{}, container.NewError(container.ErrKindKDFFailure, fmt.Errorf("unable to generate salt: %w", err))
	}
	var salt [32]byte
	copy(salt[:], saltBytes)

	mnBytes, err := randomness.Bytes(kdf.MasterNonceLen)
	if err != nil {
		return Result{}, container.NewError(container.ErrKindKDFFailure, fmt.Errorf("unable to generate master nonce: %w", err))
	}
	var masterNonce [kdf.MasterNonceLen]byte
	copy(masterNonce[:], mnBytes)

	// Step 3: derive the master secret (progress 12 -> 20).
	s.progress(12, StageKeyDerivation)
	master, err := kdf.DeriveMaster(password, salt[:], s.kdfParams)
	if err != nil {
		return Result{}, container.NewError(container.ErrKindKDFFailure, err)
	}
	defer master.Destroy()
	s.progress(20, StageKeyDerivation)

	originalSize := uint32(len(plaintext))
	totalChunks := chunkCount(originalSize)

	// Step 4: emit the header first. New containers always embed the
	// hash; only readers deal with legacy hash-less headers.
	header := container.Header{
		Algorithm:     s.algorithm,
		KDFID:         container.Argon2id,
		KDFParams:     s.kdfParams,
		Salt:          salt,
		ChunkSize:     container.ChunkSize,
		OriginalSize:  originalSize,
		TotalChunks:   totalChunks,
		Filename:      filename,
		HasHash:       true,
		PlaintextHash: hash,
	}
	out, err := container.Encode(header)
	if err != nil {
		return Result{}, err
	}

	codec, err := aead.ForAlgorithm(s.algorithm)
	if err != nil {
		return Result{}, container.NewError(container.ErrKindUnsupportedAlgorithm, err)
	}

	// Step 5: seal every chunk in ascending index order.
	ciphertexts, err := sealChunks(ctx, codec, master.Bytes(), masterNonce, plaintext, totalChunks, s)
	if err != nil {
		return Result{}, err
	}
	for i, ct := range ciphertexts {
		nonce := kdf.DeriveChunkNonce(masterNonce, uint32(i))
		out = container.AppendRecord(out, container.Record{Nonce: nonce, Ciphertext: ct})
	}

	s.progress(100, StageFinalizing)

	return Result{
		Container:        out,
		OutputFilename:   filename + ".skita",
		PlaintextHashHex: container.HashHex(hash),
	}, nil
}

// chunkCount computes ceil(originalSize / ChunkSize). 0 plaintext bytes
// yields 0 chunks.
func chunkCount(originalSize uint32) uint32 {
	if originalSize == 0 {
		return 0
	}
	return (originalSize + container.ChunkSize - 1) / container.ChunkSize
}

func chunkBounds(index, totalChunks, originalSize uint32) (start, end uint32) {
	start = index * container.ChunkSize
	end = start + container.ChunkSize
	if index == totalChunks-1 || end > originalSize {
		end = originalSize
	}
	return start, end
}

// sealChunks seals every chunk of plaintext and returns the ciphertexts in
// ascending index order. When s.parallelChunks > 1, sealing fans out across
// a bounded worker pool; the returned order is unaffected either way. ctx
// is polled for cancellation once per chunk dispatched.
func sealChunks(ctx context.Context, codec aead.ChunkCodec, master []byte, masterNonce [kdf.MasterNonceLen]byte, plaintext []byte, totalChunks uint32, s settings) ([][]byte, error) {
	out := make([][]byte, totalChunks)
	workers := s.parallelChunks
	if workers < 1 {
		workers = 1
	}

	type job struct {
		index uint32
		err   error
	}

	sem := make(chan struct{}, workers)
	results := make(chan job, totalChunks)
	var wg sync.WaitGroup

	for i := uint32(0); i < totalChunks; i++ {
		select {
		case <-ctx.Done():
			return nil, container.NewError(container.ErrKindCancelled, ctx.Err())
		default:
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(index uint32) {
			defer wg.Done()
			defer func() { <-sem }()

			start, end := chunkBounds(index, totalChunks, uint32(len(plaintext)))
			key := kdf.DeriveChunkKey(master, index)
			nonce := kdf.DeriveChunkNonce(masterNonce, index)

			ct, err := codec.Seal(key[:], nonce[:], plaintext[start:end])
			if err != nil {
				results <- job{index: index, err: fmt.Errorf("chunk %d: %w", index, err)}
				return
			}
			out[index] = ct
			results <- job{index: index}
		}(i)

		progressPercent := 20 + int(float64(i+1)/float64(totalChunks)*80)
		s.progress(progressPercent, StageChunking)
	}

	wg.Wait()
	close(results)
	for r := range results {
		if r.err != nil {
			return nil, container.NewError(container.ErrKindAuthFailure, r.err)
		}
	}

	return out, nil
}
