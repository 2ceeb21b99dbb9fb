package codec

import (
	"github.com/cydec/cydec/compress"
	"github.com/cydec/cydec/encoding"
	"github.com/cydec/cydec/internal/options"
)

// DefaultF64Scale is the fixed-point multiplier EncodeF64 uses when the
// caller passes no scale and the codec was built without WithDefaultF64Scale.
// DecodeF64 with no scale uses the scale recorded in the blob's header.
const DefaultF64Scale = encoding.DefaultF64Scale

// DefaultF32Scale is the fixed-point multiplier EncodeF32 uses when the
// caller passes no scale and the codec was built without WithDefaultF32Scale.
// DecodeF32 with no scale uses the scale recorded in the blob's header.
const DefaultF32Scale = encoding.DefaultF32Scale

// Config holds the immutable parameters shared by IntegerCodec and
// FloatCodec: the backing compressor's level and the default scale
// factors used when a caller omits one at the call site. The defaults are
// filled in by newConfig; a zero Config has zero scales and
// compress.AlgorithmNone, and does not match them.
type Config struct {
	level     int
	f64Scale  float64
	f32Scale  float64
	algorithm compress.Algorithm
}

// newConfig builds the codec's effective Config from a caller's options,
// applying defaults for anything left unset.
func newConfig(opts ...Option) (Config, error) {
	cfg := Config{
		level:     0,
		f64Scale:  DefaultF64Scale,
		f32Scale:  DefaultF32Scale,
		algorithm: compress.AlgorithmZstd,
	}

	if err := options.Apply(&cfg, opts...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Option configures a Config at construction time.
type Option = options.Option[*Config]

// WithLevel sets the backing compressor's level. 0 selects the algorithm's
// own default speed/ratio tradeoff.
//
// Two codecs built with different levels remain wire-compatible: the level
// is never written to the blob, since every backing-compressor frame is
// self-delimiting. It does, however, affect whether two encodes of
// identical input are byte-identical; tests that need byte-exact
// determinism across calls must fix the level explicitly.
func WithLevel(level int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.level = level
	})
}

// WithDefaultF64Scale overrides the default scale EncodeF64 uses when the
// caller omits one. Decoding is unaffected: DecodeF64 with no scale uses the
// blob's header scale.
func WithDefaultF64Scale(scale float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.f64Scale = scale
	})
}

// WithDefaultF32Scale overrides the default scale EncodeF32 uses when the
// caller omits one. Decoding is unaffected: DecodeF32 with no scale uses the
// blob's header scale.
func WithDefaultF32Scale(scale float64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.f32Scale = scale
	})
}

// WithAlgorithm overrides the backing compressor algorithm. The default,
// compress.AlgorithmZstd, is the only one assigned a codec id in this build
// (see package section); overriding it is intended for benchmarking the
// pipeline kernel in isolation, not for producing blobs other builds of
// this codec can decode.
func WithAlgorithm(algo compress.Algorithm) Option {
	return options.NoError(func(cfg *Config) {
		cfg.algorithm = algo
	})
}
