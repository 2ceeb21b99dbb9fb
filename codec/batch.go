package codec

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// inlineThreshold is the batch size at or below which EncodeMany/DecodeMany
// run inline rather than paying goroutine scheduling overhead. Above it,
// each item runs in its own goroutine started through an errgroup.
const inlineThreshold = 8

// runBatch applies fn to each item in xs, preserving index correspondence
// between xs and the returned slice. Every item's work is independent: fn
// must not share mutable state across calls, since items above
// inlineThreshold run concurrently, one goroutine per item.
//
// If any call to fn returns an error, runBatch returns that error and a nil
// result slice; partial results are discarded. Because each goroutine writes
// only to its own index of the result slice, the output is byte-identical
// to calling fn sequentially over xs regardless of how the scheduler
// interleaves the calls.
func runBatch[In, Out any](xs []In, fn func(In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(xs))

	if len(xs) <= inlineThreshold {
		for i, x := range xs {
			v, err := fn(x)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	for i, x := range xs {
		i, x := i, x
		g.Go(func() error {
			v, err := fn(x)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeManyI64 encodes each array independently, in order.
func (c *IntegerCodec) EncodeManyI64(arrays [][]int64) ([][]byte, error) {
	return runBatch(arrays, c.EncodeI64)
}

// DecodeManyI64 decodes each blob independently, in order.
func (c *IntegerCodec) DecodeManyI64(blobs [][]byte) ([][]int64, error) {
	return runBatch(blobs, c.DecodeI64)
}

// EncodeManyU64 encodes each array independently, in order.
func (c *IntegerCodec) EncodeManyU64(arrays [][]uint64) ([][]byte, error) {
	return runBatch(arrays, c.EncodeU64)
}

// DecodeManyU64 decodes each blob independently, in order.
func (c *IntegerCodec) DecodeManyU64(blobs [][]byte) ([][]uint64, error) {
	return runBatch(blobs, c.DecodeU64)
}

// EncodeManyI32 encodes each array independently, in order.
func (c *IntegerCodec) EncodeManyI32(arrays [][]int32) ([][]byte, error) {
	return runBatch(arrays, c.EncodeI32)
}

// DecodeManyI32 decodes each blob independently, in order.
func (c *IntegerCodec) DecodeManyI32(blobs [][]byte) ([][]int32, error) {
	return runBatch(blobs, c.DecodeI32)
}

// EncodeManyU32 encodes each array independently, in order.
func (c *IntegerCodec) EncodeManyU32(arrays [][]uint32) ([][]byte, error) {
	return runBatch(arrays, c.EncodeU32)
}

// DecodeManyU32 decodes each blob independently, in order.
func (c *IntegerCodec) DecodeManyU32(blobs [][]byte) ([][]uint32, error) {
	return runBatch(blobs, c.DecodeU32)
}

// EncodeManyBytes encodes each byte array independently, in order.
func (c *IntegerCodec) EncodeManyBytes(arrays [][]byte) ([][]byte, error) {
	return runBatch(arrays, c.EncodeBytes)
}

// DecodeManyBytes decodes each blob independently, in order.
func (c *IntegerCodec) DecodeManyBytes(blobs [][]byte) ([][]byte, error) {
	return runBatch(blobs, c.DecodeBytes)
}

// EncodeManyF64 quantizes and encodes each array independently, in order,
// using the same scale (0 for the codec's default) for every item.
func (c *FloatCodec) EncodeManyF64(arrays [][]float64, scale float64) ([][]byte, error) {
	return runBatch(arrays, func(xs []float64) ([]byte, error) {
		return c.EncodeF64(xs, scale)
	})
}

// DecodeManyF64 decodes each blob independently, in order, using the same
// scale override (0 to use each blob's own header scale) for every item.
func (c *FloatCodec) DecodeManyF64(blobs [][]byte, scale float64) ([][]float64, error) {
	return runBatch(blobs, func(b []byte) ([]float64, error) {
		return c.DecodeF64(b, scale)
	})
}

// EncodeManyF32 is the float32 counterpart of EncodeManyF64.
func (c *FloatCodec) EncodeManyF32(arrays [][]float32, scale float64) ([][]byte, error) {
	return runBatch(arrays, func(xs []float32) ([]byte, error) {
		return c.EncodeF32(xs, scale)
	})
}

// DecodeManyF32 is the float32 counterpart of DecodeManyF64.
func (c *FloatCodec) DecodeManyF32(blobs [][]byte, scale float64) ([][]float32, error) {
	return runBatch(blobs, func(b []byte) ([]float32, error) {
		return c.DecodeF32(b, scale)
	})
}
