package compress

import (
	"fmt"
	"sync"

	"github.com/ckissane/squash/format"
)

// operations binds an Algorithm to its backend transforms. A flat function
// table keeps dispatch to one indirect call per operation with no type
// hierarchy behind it.
type operations struct {
	// bound returns the backend's upper bound on the compressed size of n
	// input bytes.
	bound func(n int) int

	// compress writes a freshly allocated buffer sized to the backend
	// bound, truncated to the bytes actually produced.
	compress func(data []byte, level int) ([]byte, error)

	// decompress fills dst from the compressed stream in data, treating
	// len(dst) as capacity, and reports the bytes actually written.
	decompress func(data, dst []byte) (int, error)
}

// Algorithm describes one compression backend: its wire kind, display
// name, build-time availability, level bounds, and bound operations.
//
// Algorithms are built once per process and never mutated afterward, so a
// single *Algorithm may be shared freely across goroutines. Metadata
// accessors work on every descriptor, including unavailable ones; only the
// transform operations require Available() to be true.
type Algorithm struct {
	kind      format.Kind
	name      string
	available bool
	reason    string

	bestSpeedLevel int
	defaultLevel   int
	bestSizeLevel  int

	ops operations
}

// Kind returns the algorithm's wire identifier.
func (a *Algorithm) Kind() format.Kind { return a.kind }

// Name returns the algorithm's display name ("none", "zlib", "zstd",
// "unknown").
func (a *Algorithm) Name() string { return a.name }

// Available reports whether the backend is linked into this build. O(1)
// and side-effect free.
func (a *Algorithm) Available() bool { return a.available }

// UnavailableReason returns a human-readable explanation when Available is
// false, and "" otherwise.
func (a *Algorithm) UnavailableReason() string { return a.reason }

// BestSpeedLevel returns the fastest valid compression level.
func (a *Algorithm) BestSpeedLevel() int { return a.bestSpeedLevel }

// DefaultLevel returns the level used by Compress.
func (a *Algorithm) DefaultLevel() int { return a.defaultLevel }

// BestSizeLevel returns the level producing the smallest output.
func (a *Algorithm) BestSizeLevel() int { return a.bestSizeLevel }

// CompressBound returns the backend's upper bound on the compressed size
// of n input bytes. Panics if the backend is not operable.
func (a *Algorithm) CompressBound(n int) int {
	a.checkOperable("CompressBound")
	return a.ops.bound(n)
}

// Compress compresses data at the algorithm's default level.
func (a *Algorithm) Compress(data []byte) ([]byte, error) {
	return a.CompressLevel(data, a.defaultLevel)
}

// CompressLevel compresses data at the given level.
//
// The returned buffer is freshly allocated at the backend's upper bound
// and truncated to the bytes actually produced; its length always equals
// the compressed size. Compressing zero bytes succeeds and yields a stream
// that decompresses back to zero bytes.
//
// Level handling is backend-specific: zlib rejects out-of-range levels
// with ErrInvalidLevel, zstd clamps them into bounds. See the level
// constants on each backend.
//
// Calling CompressLevel on an unavailable backend, or on the unknown
// placeholder, is a programmer error and panics; check Available first.
// The identity algorithm (KindNone) is operable and returns data
// unchanged.
func (a *Algorithm) CompressLevel(data []byte, level int) ([]byte, error) {
	a.checkOperable("CompressLevel")
	return a.ops.compress(data, level)
}

// Decompress decompresses data into a freshly allocated buffer.
//
// uncompressedSize is the exact original length, supplied by the caller as
// a precondition (the backends need it to bound the output; it is not
// discovered from the stream). If the stream turns out to hold fewer bytes
// the result is truncated to what was actually produced; if it holds more,
// Decompress returns an ErrDestinationTooSmall class error. Panics on a
// negative size.
func (a *Algorithm) Decompress(data []byte, uncompressedSize int) ([]byte, error) {
	if uncompressedSize < 0 {
		panic(fmt.Sprintf("compress: negative uncompressed size %d", uncompressedSize))
	}

	dst := make([]byte, uncompressedSize)
	n, err := a.DecompressInto(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressInto decompresses data into dst, treating len(dst) as the
// destination capacity, and returns the number of bytes written.
//
// DecompressInto never writes past dst and never reads past data, even for
// malformed input. Failure classes: ErrDestinationTooSmall when the stream
// exceeds the capacity (dst holds the first len(dst) bytes), and
// ErrCorruptInput when the backend rejects the stream. Panics if the
// backend is not operable.
func (a *Algorithm) DecompressInto(data, dst []byte) (int, error) {
	a.checkOperable("DecompressInto")
	return a.ops.decompress(data, dst)
}

func (a *Algorithm) checkOperable(op string) {
	if !a.available {
		panic(fmt.Sprintf("compress: %s on unavailable %q algorithm (%s)", op, a.name, a.reason))
	}
}

// Registry of descriptors, one per possible kind byte, built on first
// lookup. Entries for unassigned bytes alias the unknown placeholder so
// that lookups stay total. Never written after registryOnce fires.
var (
	registryOnce sync.Once
	registry     [256]*Algorithm
)

func buildRegistry() {
	unknown := &Algorithm{
		kind:      format.KindUnknown,
		name:      "unknown",
		available: false,
		reason:    "reserved kind, no backend assigned",
	}
	for i := range registry {
		registry[i] = unknown
	}

	registry[format.KindNone] = newNoneAlgorithm()
	registry[format.KindZlib] = newZlibAlgorithm()
	registry[format.KindZstd] = newZstdAlgorithm()
}

// Lookup returns the descriptor for kind. It is total: every kind value,
// including KindUnknown and values outside the wire set, yields a non-nil
// descriptor whose metadata can be read unconditionally. Unassigned values
// map to the unknown placeholder with Available() == false.
//
// The returned pointer is stable for the life of the process.
func Lookup(kind format.Kind) *Algorithm {
	registryOnce.Do(buildRegistry)
	return registry[kind]
}

// For is Lookup for a raw wire byte. It never fails: bytes outside the
// wire set report an unavailable descriptor rather than an error, which
// keeps diagnostic paths (artifact dumpers, error messages) total. Use
// format.ParseKind when a strict boundary check is wanted instead.
func For(raw byte) *Algorithm {
	return Lookup(format.Kind(raw))
}

// Select returns the descriptor for kind when useCompression is true, and
// the identity algorithm otherwise. The identity transform is lossless, so
// disabling compression never drops data.
func Select(kind format.Kind, useCompression bool) *Algorithm {
	if !useCompression {
		return Lookup(format.KindNone)
	}

	return Lookup(kind)
}

// OrIdentity returns the descriptor for kind if its backend is available,
// and the identity algorithm otherwise. The fallback is always the
// lossless identity transform, never a different compression choice.
func OrIdentity(kind format.Kind) *Algorithm {
	if a := Lookup(kind); a.Available() {
		return a
	}

	return Lookup(format.KindNone)
}
