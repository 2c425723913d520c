package compress

import (
	"fmt"

	"github.com/ckissane/squash/format"
)

// Zstandard compression levels. Out-of-range levels are clamped into
// bounds rather than rejected, matching libzstd's own behavior.
const (
	ZstdBestSpeedLevel = 1
	ZstdDefaultLevel   = 5
	ZstdBestSizeLevel  = 12
)

// newZstdAlgorithm builds the Zstandard descriptor. The transform
// implementation is selected at build time: cgo builds bind libzstd via
// gozstd, non-cgo builds use the pure-Go decoder/encoder, and the nozstd
// tag compiles in an unavailable stub. All three variants share this
// descriptor and the level/bound constants.
func newZstdAlgorithm() *Algorithm {
	return &Algorithm{
		kind:           format.KindZstd,
		name:           "zstd",
		available:      zstdSupported,
		reason:         zstdUnavailableReason,
		bestSpeedLevel: ZstdBestSpeedLevel,
		defaultLevel:   ZstdDefaultLevel,
		bestSizeLevel:  ZstdBestSizeLevel,
		ops: operations{
			bound:      zstdCompressBound,
			compress:   zstdCompress,
			decompress: zstdDecompress,
		},
	}
}

// zstdCompressBound mirrors ZSTD_COMPRESSBOUND: full block overhead plus a
// margin that tapers off for inputs under one 128 KiB block.
func zstdCompressBound(n int) int {
	margin := 0
	if n < 128<<10 {
		margin = (128<<10 - n) >> 11
	}

	return n + n>>8 + margin
}

func clampZstdLevel(level int) int {
	if level < ZstdBestSpeedLevel {
		return ZstdBestSpeedLevel
	}
	if level > ZstdBestSizeLevel {
		return ZstdBestSizeLevel
	}

	return level
}

// translateZstdError maps Zstandard decoder failures onto the shared
// taxonomy. Every error the frame decoder reports is a statement about the
// input bytes (bad magic, bad frame, CRC mismatch, truncation), so the
// whole set classifies as corrupt input.
func translateZstdError(err error) error {
	return fmt.Errorf("zstd: %v: %w", err, ErrCorruptInput)
}
