// Package squash provides a uniform front end over multiple lossless
// compression backends, selected by a stable one-byte kind.
//
// It exists so that tools producing serialized artifacts can request
// "compress with kind K" without binding to a backend library, and so that
// readers can decode artifacts even in builds where a backend was excluded
// (by checking availability instead of crashing at link boundaries).
//
// # Basic Usage
//
//	kind := format.KindZstd
//	if !squash.Available(kind) {
//	    kind = format.KindNone
//	}
//	packed, err := squash.Compress(kind, payload)
//	...
//	// The caller persists the kind byte and len(payload) itself; this
//	// layer adds no framing.
//	restored, err := squash.Decompress(kind, packed, len(payload))
//
// # Package Structure
//
// This package is a thin convenience layer over the compress package,
// which holds the descriptor registry, dispatch, and fallback policy. The
// format package defines the wire kind values. For level control,
// capability queries, and decompression into caller-owned buffers, use
// compress.Lookup directly.
package squash

import (
	"github.com/ckissane/squash/compress"
	"github.com/ckissane/squash/format"
)

// Compress compresses data with the given kind's default level.
//
// The kind's backend must be available; use Available or
// compress.OrIdentity first when the build configuration is not known.
func Compress(kind format.Kind, data []byte) ([]byte, error) {
	return compress.Lookup(kind).Compress(data)
}

// CompressLevel compresses data with the given kind at an explicit level.
// Level bounds and out-of-range policy are backend-specific; see the level
// constants in the compress package.
func CompressLevel(kind format.Kind, data []byte, level int) ([]byte, error) {
	return compress.Lookup(kind).CompressLevel(data, level)
}

// Decompress restores data compressed with the given kind.
// uncompressedSize must be the exact original length, as recorded by
// whatever container carried the compressed bytes.
func Decompress(kind format.Kind, data []byte, uncompressedSize int) ([]byte, error) {
	return compress.Lookup(kind).Decompress(data, uncompressedSize)
}

// Available reports whether the kind's backend is linked into this build.
func Available(kind format.Kind) bool {
	return compress.Lookup(kind).Available()
}
