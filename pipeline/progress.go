package pipeline

// Stage names one step of the encrypt/decrypt sequence, reported alongside
// a percent so a caller can render a meaningful label.
type Stage string

const (
	// StageHashing covers the initial whole-plaintext SHA-256 pass
	// (encrypt) and, in decrypt, the opening report before the header is
	// parsed and the final re-hash used for the v2 integrity check.
	StageHashing Stage = "hashing"
	// StageKeyDerivation covers the Argon2id master-secret derivation.
	StageKeyDerivation Stage = "key_derivation"
	// StageChunking covers the per-chunk seal/open loop.
	StageChunking Stage = "chunking"
	// StageFinalizing covers assembling the result after the last chunk.
	StageFinalizing Stage = "finalizing"
)

// ProgressFunc receives a percent in [0, 100] and the stage it belongs to.
// Successive calls within one Encrypt/Decrypt invocation report
// non-decreasing percent values; it may be invoked synchronously from the
// hot loop and must not block significantly.
type ProgressFunc func(percent int, stage Stage)

// ProgressSink is the interface form of ProgressFunc, for callers (and
// tests) that prefer a mockable interface over a bare function value.
type ProgressSink interface {
	OnProgress(percent int, stage Stage)
}

// WithProgressSink adapts a ProgressSink into a WithProgress option.
func WithProgressSink(sink ProgressSink) Option {
	return WithProgress(sink.OnProgress)
}

// noopProgress is used when the caller supplies no progress sink.
func noopProgress(int, Stage) {}
