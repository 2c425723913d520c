//go:build nozstd

package compress

const (
	zstdSupported         = false
	zstdUnavailableReason = "zstd backend excluded by the nozstd build tag"
)

func zstdCompress([]byte, int) ([]byte, error) {
	panic("compress: zstd backend not linked into this build")
}

func zstdDecompress([]byte, []byte) (int, error) {
	panic("compress: zstd backend not linked into this build")
}
