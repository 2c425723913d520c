//go:build !nozlib

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

const (
	zlibSupported         = true
	zlibUnavailableReason = ""
)

// zlibReader is the stream decoder's full surface: the ReadCloser returned
// by zlib.NewReader also implements Resetter, which lets reuse skip the
// per-call allocation of the inflate state.
type zlibReader interface {
	io.ReadCloser
	zlib.Resetter
}

var zlibReaderPool sync.Pool

// zlibCompressBound mirrors zlib's compressBound: worst-case deflate
// expansion for n stored bytes plus the zlib header and checksum trailer.
func zlibCompressBound(n int) int {
	return n + n>>12 + n>>14 + n>>25 + 13
}

func zlibCompress(data []byte, level int) ([]byte, error) {
	if level < ZlibBestSpeedLevel || level > ZlibBestSizeLevel {
		return nil, fmt.Errorf("zlib: level %d outside [%d, %d]: %w",
			level, ZlibBestSpeedLevel, ZlibBestSizeLevel, ErrInvalidLevel)
	}

	var buf bytes.Buffer
	buf.Grow(zlibCompressBound(len(data)))

	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		// Levels were validated above; anything else is allocation
		// failure, which is fatal here.
		panic(fmt.Sprintf("compress: zlib writer rejected level %d: %v", level, err))
	}

	// Writes into a bytes.Buffer cannot fail short of allocation failure.
	if _, err := zw.Write(data); err != nil {
		panic(fmt.Sprintf("compress: zlib compression failed: %v", err))
	}
	if err := zw.Close(); err != nil {
		panic(fmt.Sprintf("compress: zlib stream finalization failed: %v", err))
	}

	return buf.Bytes(), nil
}

func zlibDecompress(data, dst []byte) (int, error) {
	zr, err := getZlibReader(data)
	if err != nil {
		return 0, translateZlibError(err)
	}
	defer zlibReaderPool.Put(zr)

	n, err := drainInto(zr, dst)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, ErrDestinationTooSmall):
		return n, fmt.Errorf("zlib: uncompressed stream exceeds %d byte destination: %w",
			len(dst), ErrDestinationTooSmall)
	default:
		return n, translateZlibError(err)
	}
}

func getZlibReader(data []byte) (zlibReader, error) {
	br := bytes.NewReader(data)
	if v := zlibReaderPool.Get(); v != nil {
		zr, _ := v.(zlibReader)
		if err := zr.Reset(br, nil); err != nil {
			zlibReaderPool.Put(zr)
			return nil, err
		}

		return zr, nil
	}

	rc, err := zlib.NewReader(br)
	if err != nil {
		return nil, err
	}

	return rc.(zlibReader), nil
}

// translateZlibError maps the zlib decoder's failure signals onto the
// shared taxonomy. The decoder's error set is closed: the three zlib
// sentinels, truncated-stream EOFs, and deflate corruption errors. All of
// them are statements about the input bytes. Anything else means the
// backend broke its contract and is fatal rather than misreported.
func translateZlibError(err error) error {
	switch {
	case errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary),
		errors.Is(err, zlib.ErrHeader),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return fmt.Errorf("zlib: %v: %w", err, ErrCorruptInput)
	}

	var corrupt flate.CorruptInputError
	if errors.As(err, &corrupt) {
		return fmt.Errorf("zlib: %v: %w", err, ErrCorruptInput)
	}

	panic(fmt.Sprintf("compress: unexpected zlib error: %v", err))
}
