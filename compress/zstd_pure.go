//go:build !cgo && !nozstd

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

const (
	zstdSupported         = true
	zstdUnavailableReason = ""
)

// zstdEncoderPool pools encoders at the default level. The
// klauspost/compress/zstd encoder is designed for reuse and operates
// without allocations after warmup, so pooling removes the dominant cost
// of one-shot EncodeAll calls.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		return newZstdEncoder(ZstdDefaultLevel)
	},
}

// zstdDecoderPool pools decoders for the same reason; a decoder survives
// failed decodes and stays reusable.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // single-threaded for predictable performance
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: zstd decoder options rejected: %v", err))
		}

		return decoder
	},
}

func newZstdEncoder(level int) *zstd.Encoder {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithZeroFrames(true), // empty input still emits a decodable frame
		zstd.WithEncoderCRC(false),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		panic(fmt.Sprintf("compress: zstd encoder options rejected: %v", err))
	}

	return encoder
}

func zstdCompress(data []byte, level int) ([]byte, error) {
	level = clampZstdLevel(level)
	dst := make([]byte, 0, zstdCompressBound(len(data)))

	// The pure-Go encoder buckets zstd levels; levels that bucket with the
	// default reuse the pooled encoder.
	if zstd.EncoderLevelFromZstd(level) == zstd.EncoderLevelFromZstd(ZstdDefaultLevel) {
		encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(encoder)

		return encoder.EncodeAll(data, dst), nil
	}

	encoder := newZstdEncoder(level)
	defer encoder.Close()

	return encoder.EncodeAll(data, dst), nil
}

func zstdDecompress(data, dst []byte) (int, error) {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer func() {
		// Drop the reference to the caller's input before pooling so the
		// idle decoder does not pin it.
		_ = decoder.Reset(nil)
		zstdDecoderPool.Put(decoder)
	}()

	if err := decoder.Reset(bytes.NewReader(data)); err != nil {
		return 0, translateZstdError(err)
	}

	n, err := drainInto(decoder, dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, ErrDestinationTooSmall):
		return n, fmt.Errorf("zstd: uncompressed stream exceeds %d byte destination: %w",
			len(dst), ErrDestinationTooSmall)
	default:
		return n, translateZstdError(err)
	}
}
