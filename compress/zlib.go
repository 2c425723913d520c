package compress

import "github.com/ckissane/squash/format"

// zlib compression levels. The bounds come from the deflate format
// itself; out-of-range levels are rejected with ErrInvalidLevel rather
// than clamped, matching the underlying writer's behavior.
const (
	ZlibBestSpeedLevel = 1
	ZlibDefaultLevel   = 6
	ZlibBestSizeLevel  = 9
)

func newZlibAlgorithm() *Algorithm {
	return &Algorithm{
		kind:           format.KindZlib,
		name:           "zlib",
		available:      zlibSupported,
		reason:         zlibUnavailableReason,
		bestSpeedLevel: ZlibBestSpeedLevel,
		defaultLevel:   ZlibDefaultLevel,
		bestSizeLevel:  ZlibBestSizeLevel,
		ops: operations{
			bound:      zlibCompressBound,
			compress:   zlibCompress,
			decompress: zlibDecompress,
		},
	}
}
