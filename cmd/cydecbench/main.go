// Command cydecbench encodes a few synthetic time-series arrays and reports
// the resulting compression ratio. It exists to exercise the codec facade
// end-to-end outside of the test suite, not as part of the core pipeline.
package main

import (
	"math"
	"os"
	"time"

	"github.com/cydec/cydec"
	"github.com/rs/zerolog"
)

func main() {
	log := newLogger()

	ic, err := cydec.NewIntegerCodec()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build integer codec")
	}

	fc, err := cydec.NewFloatCodec()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build float codec")
	}

	runInteger(log, ic, "constant", constantSeries(10_000, 42))
	runInteger(log, ic, "sequential", sequentialSeries(10_000))
	runInteger(log, ic, "sawtooth", sawtoothSeries(10_000, 100))

	runFloat(log, fc, "sine-wave", sineSeries(10_000))
}

func runInteger(log zerolog.Logger, ic *cydec.IntegerCodec, name string, samples []int64) {
	start := time.Now()

	blob, err := ic.EncodeI64(samples)
	if err != nil {
		log.Error().Err(err).Str("series", name).Msg("encode failed")
		return
	}

	decoded, err := ic.DecodeI64(blob)
	if err != nil {
		log.Error().Err(err).Str("series", name).Msg("decode failed")
		return
	}

	if len(decoded) != len(samples) {
		log.Error().Str("series", name).Msg("round trip length mismatch")
		return
	}

	rawBytes := len(samples) * 8
	ratio := float64(rawBytes) / float64(max(len(blob), 1))

	log.Info().
		Str("series", name).
		Int("elements", len(samples)).
		Int("raw_bytes", rawBytes).
		Int("blob_bytes", len(blob)).
		Float64("ratio", ratio).
		Dur("elapsed", time.Since(start)).
		Msg("integer series encoded")
}

func runFloat(log zerolog.Logger, fc *cydec.FloatCodec, name string, samples []float64) {
	blob, err := fc.EncodeF64(samples, 0)
	if err != nil {
		log.Error().Err(err).Str("series", name).Msg("encode failed")
		return
	}

	decoded, err := fc.DecodeF64(blob, 0)
	if err != nil {
		log.Error().Err(err).Str("series", name).Msg("decode failed")
		return
	}

	var maxErr float64
	for i, v := range samples {
		if d := math.Abs(v - decoded[i]); d > maxErr {
			maxErr = d
		}
	}

	log.Info().
		Str("series", name).
		Int("elements", len(samples)).
		Int("blob_bytes", len(blob)).
		Float64("max_abs_error", maxErr).
		Msg("float series encoded")
}

func constantSeries(n int, v int64) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = v
	}
	return xs
}

func sequentialSeries(n int) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = int64(i)
	}
	return xs
}

func sawtoothSeries(n, period int) []int64 {
	xs := make([]int64, n)
	for i := range xs {
		xs[i] = int64(i % period)
	}
	return xs
}

func sineSeries(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.Sin(float64(i) / 100)
	}
	return xs
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Str("service", "cydecbench").
		Logger()
}
