package compress

import "errors"

// Error classes returned by decompression and level validation. Backend
// failures are always wrapped around one of these sentinels, so callers
// match with errors.Is and never depend on backend message text.
var (
	// ErrDestinationTooSmall reports that the uncompressed stream holds
	// more bytes than the supplied destination capacity. Recoverable:
	// retry with the correct expected size.
	ErrDestinationTooSmall = errors.New("destination buffer too small")

	// ErrCorruptInput reports that the backend rejected the input as not a
	// valid compressed stream. Recoverable: surfaced to the caller.
	ErrCorruptInput = errors.New("corrupt compressed input")

	// ErrInvalidLevel reports a compression level outside the backend's
	// documented bounds, for backends whose policy is to reject rather
	// than clamp.
	ErrInvalidLevel = errors.New("compression level out of range")
)
