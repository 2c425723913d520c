// Package compress maps one-byte compression kinds to backend algorithms
// and dispatches compress/decompress calls through a uniform descriptor,
// so callers can shrink serialized artifacts without binding to a specific
// backend or caring whether it was linked into the build.
//
// # Overview
//
// Every kind byte resolves to exactly one *Algorithm descriptor:
//
//	alg := compress.Lookup(format.KindZstd)
//	if !alg.Available() {
//	    log.Printf("zstd not linked: %s", alg.UnavailableReason())
//	}
//	packed, err := alg.Compress(payload)
//
// Lookup is total. Unavailable backends, the identity algorithm, the
// unknown placeholder, and even unassigned kind bytes all yield a
// descriptor whose metadata (Name, Available, level bounds) can be read
// unconditionally; only the transforms require an available backend.
//
// # Algorithms
//
// Two real backends are wired, plus the identity transform:
//
//   - none (kind 0): identity pass-through, always available. Used
//     directly, and as the fallback when compression is disabled or a
//     requested backend is not linked.
//   - zlib (kind 1): deflate-family stream, levels 1-9 (default 6).
//     Out-of-range levels are rejected with ErrInvalidLevel.
//   - zstd (kind 2): Zstandard, levels 1-12 (default 5). Out-of-range
//     levels are clamped. cgo builds bind libzstd through
//     valyala/gozstd; non-cgo builds use klauspost/compress/zstd.
//
// Kind 255 is the unknown placeholder: it answers metadata queries for
// diagnostics but its transforms panic.
//
// The nozlib and nozstd build tags exclude a backend entirely. The
// descriptor still exists and explains itself through UnavailableReason,
// while invoking its transforms is a programmer error and panics — callers
// gate on Available, or use OrIdentity to fall back losslessly.
//
// # Buffer contract
//
// Compress allocates the backend's worst-case bound up front and returns
// the buffer truncated to the bytes actually produced. Decompress requires
// the caller to supply the exact expected output size (outer containers
// record it alongside the kind byte); the backends use it to bound output
// and never write past it, even for malformed input.
//
// # Errors
//
// Recoverable failures are ErrDestinationTooSmall and ErrCorruptInput,
// always wrapped with the backend's message and matched via errors.Is.
// Invalid levels surface as ErrInvalidLevel where the backend rejects
// rather than clamps. Contract violations (operating an unavailable
// backend, a backend signal outside its documented set) panic.
//
// # Concurrency
//
// Descriptors are immutable after the registry's one-time construction and
// safe to share. The transforms are synchronous and safe for concurrent
// use as long as each call owns its input and output buffers; internal
// encoder/decoder state is pooled per call.
package compress
