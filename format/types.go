// Package format defines the stable wire identifiers shared by the squash
// packages. The one-byte compression kind is part of persisted artifacts;
// its numeric values never change meaning across releases.
package format

import "fmt"

// Kind identifies a compression backend. It is stored as a single byte in
// outer containers, so the values below are frozen.
type Kind uint8

const (
	KindNone    Kind = 0   // KindNone selects the identity (no-op) transform.
	KindZlib    Kind = 1   // KindZlib selects the zlib (deflate family) backend.
	KindZstd    Kind = 2   // KindZstd selects the Zstandard backend.
	KindUnknown Kind = 255 // KindUnknown is reserved for diagnostics; it never names an operable backend.
)

// IsValid reports whether k is one of the defined wire values.
//
// KindUnknown is a valid wire value even though it is not operable:
// readers may encounter it in artifacts written by newer tools.
func (k Kind) IsValid() bool {
	switch k {
	case KindNone, KindZlib, KindZstd, KindUnknown:
		return true
	default:
		return false
	}
}

// ParseKind maps a raw wire byte to a Kind.
//
// Bytes outside the defined set are rejected here, at the deserialization
// boundary, rather than coerced to KindUnknown: an artifact carrying an
// unassigned kind byte was written by an incompatible tool and must not be
// interpreted further.
func ParseKind(b byte) (Kind, error) {
	k := Kind(b)
	if !k.IsValid() {
		return KindUnknown, fmt.Errorf("format: unassigned compression kind byte 0x%02x", b)
	}

	return k, nil
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZlib:
		return "zlib"
	case KindZstd:
		return "zstd"
	default:
		return "unknown"
	}
}
