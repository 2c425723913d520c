//go:build cgo && !nozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

const (
	zstdSupported         = true
	zstdUnavailableReason = ""
)

func zstdCompress(data []byte, level int) ([]byte, error) {
	dst := make([]byte, 0, zstdCompressBound(len(data)))
	return gozstd.CompressLevel(dst, data, clampZstdLevel(level)), nil
}

func zstdDecompress(data, dst []byte) (int, error) {
	// Decompress appends into the supplied slice's full capacity, so the
	// three-index expression caps it at len(dst): output beyond that makes
	// gozstd switch to a self-allocated buffer instead of spilling into
	// spare capacity the caller still owns.
	out, err := gozstd.Decompress(dst[:0:len(dst)], data)
	if err != nil {
		return 0, translateZstdError(err)
	}

	n := copy(dst, out)
	if len(out) > len(dst) {
		return n, fmt.Errorf("zstd: uncompressed stream exceeds %d byte destination: %w",
			len(dst), ErrDestinationTooSmall)
	}

	return n, nil
}
