// Package encoding implements the fixed-point quantization step of cydec's
// float pipeline kernel: converting a float64/float32 sample array to the
// signed integer array the internal/xform transform chain operates on, and
// back.
//
// # Why quantize at all
//
// The transform chain in internal/xform (zigzag, delta, little-endian pack)
// only operates on fixed-width integers: delta encoding needs wrapping
// subtraction in a ring, which floating-point arithmetic does not have. A
// float path therefore has two choices: reinterpret the IEEE-754 bit
// pattern as an integer (preserves every bit, but destroys the "nearby
// values differ by a small amount" property delta encoding depends on,
// since adjacent floats can differ wildly in their raw bit pattern), or
// quantize to a fixed-point integer at a chosen precision (loses precision
// beyond 1/scale, but keeps small real-world deltas small in the integer
// domain, which is exactly what compresses well). This package takes the
// second path.
//
// # Quantization rule
//
// Encode computes q = round(v * scale), rounding half away from zero, and
// stores q as an int64 (f64) or int32 (f32). Decode is pure division:
// v = q / scale. Because decode never rounds, only encode's tie-break rule
// matters for determinism; it is fixed, not configurable, so the same input
// always quantizes to the same integer regardless of which codec instance
// encoded it.
//
// # Edge cases
//
//   - Both +0.0 and -0.0 quantize to integer zero and decode back to +0.0.
//   - NaN and ±Infinity are rejected outright at encode time with
//     errs.ErrQuantizationOverflow: they are outside the domain this
//     quantizer supports, not a case this package silently coerces to some
//     implementation-defined integer.
//   - A scale large enough to push round(v*scale) outside the target
//     integer's range also fails encode with the same sentinel; choosing a
//     scale compatible with the input's magnitude is the caller's
//     responsibility. The comparison against the integer range is done
//     without rounding the bound itself through float64, since the exact
//     value of math.MaxInt64 has no exact float64 representation.
//
// # Precision contract
//
// Worst-case absolute error per decoded sample is bounded by 1/scale, plus
// a negligible unit-in-the-last-place term from the division itself. A
// caller that needs six decimal digits of precision on values up to
// millions in magnitude should pick a scale well above 1e6 accordingly;
// the codec package's DefaultF64Scale/DefaultF32Scale (1e9 and 1e6) are
// reasonable defaults for values in typical sensor/price/metric ranges, not
// a universal choice.
package encoding
