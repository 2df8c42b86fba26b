package pipeline

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/skita-dev/skita/crypto/aead"
	"github.com/skita-dev/skita/crypto/kdf"
)

// DefaultAlgorithm is the cipher suite used when no WithAlgorithm option is
// given.
var DefaultAlgorithm = aead.AES256GCM

// DefaultKDFParams are the Argon2id cost parameters used when no
// WithKDFParams option is given.
func DefaultKDFParams() kdf.Params {
	return kdf.DefaultParams()
}

type settings struct {
	algorithm      aead.Algorithm
	kdfParams      kdf.Params
	progress       ProgressFunc
	parallelChunks int
}

func defaultSettings() settings {
	return settings{
		algorithm: DefaultAlgorithm,
		kdfParams: DefaultKDFParams(),
		progress:  noopProgress,
	}
}

// Option configures one Encrypt or Decrypt invocation.
type Option func(*settings)

// WithAlgorithm selects the AEAD cipher suite used for encryption. Decrypt
// ignores this option; the algorithm always comes from the container
// header.
func WithAlgorithm(algo aead.Algorithm) Option {
	return func(s *settings) {
		s.algorithm = algo
	}
}

// WithKDFParams overrides the default Argon2id cost parameters used for
// encryption. Decrypt ignores this option; the parameters always come from
// the container header.
func WithKDFParams(params kdf.Params) Option {
	return func(s *settings) {
		s.kdfParams = params
	}
}

// WithKDFProfile is a convenience wrapper around WithKDFParams that accepts
// a kdf.Profile, such as one decoded from a portable token with
// crypto/kdf.DecodeProfile.
func WithKDFProfile(profile kdf.Profile) Option {
	return WithKDFParams(profile.Params())
}

// WithProgress registers a sink invoked at chunk boundaries with a
// monotonically non-decreasing percent and a stage label.
func WithProgress(fn ProgressFunc) Option {
	return func(s *settings) {
		if fn != nil {
			s.progress = fn
		}
	}
}

// WithParallelChunks makes Encrypt fan chunk sealing out across a bounded
// worker pool of size n; records are still assembled strictly in ascending
// index order before being written, so the output bytes are unaffected.
// n <= 1 disables parallelism. Decrypt never parallelizes; this option is
// a no-op there.
func WithParallelChunks(n int) Option {
	return func(s *settings) {
		s.parallelChunks = n
	}
}

// OptionsFromMap decodes a generic, untyped config map (e.g. sourced from
// an embedding application's own configuration loader) into a slice of
// Option. Recognized keys: "algorithm" (0 or 1), "kdf_memory_kib",
// "kdf_iterations", "kdf_parallelism", "parallel_chunks". This is additive
// to direct Option construction, not a replacement for it.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	var cfg struct {
		Algorithm      *uint8 `mapstructure:"algorithm"`
		KDFMemoryKiB   uint32 `mapstructure:"kdf_memory_kib"`
		KDFIterations  uint32 `mapstructure:"kdf_iterations"`
		KDFParallelism uint8  `mapstructure:"kdf_parallelism"`
		ParallelChunks int    `mapstructure:"parallel_chunks"`
	}
	if err := mapstructure.WeakDecode(m, &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode pipeline options: %w", err)
	}

	var opts []Option
	if cfg.Algorithm != nil {
		opts = append(opts, WithAlgorithm(aead.Algorithm(*cfg.Algorithm)))
	}
	if cfg.KDFMemoryKiB != 0 || cfg.KDFIterations != 0 || cfg.KDFParallelism != 0 {
		params := DefaultKDFParams()
		if cfg.KDFMemoryKiB != 0 {
			params.MemoryKiB = cfg.KDFMemoryKiB
		}
		if cfg.KDFIterations != 0 {
			params.Iterations = cfg.KDFIterations
		}
		if cfg.KDFParallelism != 0 {
			params.Parallelism = cfg.KDFParallelism
		}
		opts = append(opts, WithKDFParams(params))
	}
	if cfg.ParallelChunks != 0 {
		opts = append(opts, WithParallelChunks(cfg.ParallelChunks))
	}

	return opts, nil
}
