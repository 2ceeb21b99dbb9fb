package encoding

import (
	"math"

	"github.com/cydec/cydec/errs"
)

// DefaultF64Scale is the fixed-point multiplier used by the f64 float path
// when the caller does not supply one.
const DefaultF64Scale = 1e9

// DefaultF32Scale is the fixed-point multiplier used by the f32 float path
// when the caller does not supply one.
const DefaultF32Scale = 1e6

// QuantizeF64 converts a float64 sample array to the fixed-point i64 array
// the integer pipeline kernel operates on: q = round(v * scale), rounding
// half away from zero. Both +0.0 and -0.0 quantize to 0.
//
// Returns errs.ErrQuantizationOverflow if any sample is non-finite or its
// scaled value does not fit in an int64.
func QuantizeF64(dst []int64, samples []float64, scale float64) error {
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errs.NonFinite(v)
		}

		scaled := math.Round(v * scale)
		// math.MaxInt64 has no exact float64 representation (it rounds up to
		// 2^63 at compile time), so comparing against it directly would let
		// scaled == 2^63 through into an out-of-range float->int conversion.
		// 2^63 and -2^63 are both exactly representable, so compare against
		// those instead.
		if scaled >= 9223372036854775808.0 || scaled < -9223372036854775808.0 {
			return errs.Overflow(v, scale)
		}

		dst[i] = int64(scaled)
	}
	return nil
}

// DequantizeF64 inverts QuantizeF64: v = q / scale.
func DequantizeF64(dst []float64, q []int64, scale float64) {
	for i, v := range q {
		dst[i] = float64(v) / scale
	}
}

// QuantizeF32 converts a float32 sample array to the fixed-point i32 array
// the integer pipeline kernel operates on, using the same rounding and
// overflow rules as QuantizeF64.
func QuantizeF32(dst []int32, samples []float32, scale float64) error {
	for i, v := range samples {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errs.NonFinite(f)
		}

		scaled := math.Round(f * scale)
		if scaled > math.MaxInt32 || scaled < math.MinInt32 {
			return errs.Overflow(f, scale)
		}

		dst[i] = int32(scaled)
	}
	return nil
}

// DequantizeF32 inverts QuantizeF32.
func DequantizeF32(dst []float32, q []int32, scale float64) {
	for i, v := range q {
		dst[i] = float32(float64(v) / scale)
	}
}
