//go:build nozlib

package compress

const (
	zlibSupported         = false
	zlibUnavailableReason = "zlib backend excluded by the nozlib build tag"
)

func zlibCompressBound(int) int {
	panic("compress: zlib backend not linked into this build")
}

func zlibCompress([]byte, int) ([]byte, error) {
	panic("compress: zlib backend not linked into this build")
}

func zlibDecompress([]byte, []byte) (int, error) {
	panic("compress: zlib backend not linked into this build")
}
