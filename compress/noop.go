package compress

import (
	"fmt"

	"github.com/ckissane/squash/format"
)

// newNoneAlgorithm builds the identity algorithm bound to KindNone. It is
// always available and serves as the fallback when compression is disabled
// or a requested backend is not linked.
//
// The transforms are zero-copy: Compress returns the input slice as-is,
// and the returned slice shares the input's backing array. Callers that
// mutate the input afterward must copy first.
func newNoneAlgorithm() *Algorithm {
	return &Algorithm{
		kind:      format.KindNone,
		name:      "none",
		available: true,
		ops: operations{
			bound: func(n int) int { return n },
			compress: func(data []byte, _ int) ([]byte, error) {
				return data, nil
			},
			decompress: func(data, dst []byte) (int, error) {
				n := copy(dst, data)
				if n < len(data) {
					return n, fmt.Errorf("none: %d byte input exceeds %d byte destination: %w",
						len(data), len(dst), ErrDestinationTooSmall)
				}

				return n, nil
			},
		},
	}
}
