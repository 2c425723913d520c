package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	testCases := []struct {
		kind     Kind
		expected string
	}{
		{KindNone, "none"},
		{KindZlib, "zlib"},
		{KindZstd, "zstd"},
		{KindUnknown, "unknown"},
		{Kind(3), "unknown"},
		{Kind(254), "unknown"},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, tc.kind.String())
	}
}

func TestKind_IsValid(t *testing.T) {
	valid := map[Kind]bool{
		KindNone:    true,
		KindZlib:    true,
		KindZstd:    true,
		KindUnknown: true,
	}

	for i := 0; i < 256; i++ {
		k := Kind(i)
		require.Equal(t, valid[k], k.IsValid(), "kind byte %d", i)
	}
}

func TestParseKind_WireValues(t *testing.T) {
	testCases := []struct {
		raw      byte
		expected Kind
	}{
		{0, KindNone},
		{1, KindZlib},
		{2, KindZstd},
		{255, KindUnknown},
	}

	for _, tc := range testCases {
		kind, err := ParseKind(tc.raw)
		require.NoError(t, err)
		require.Equal(t, tc.expected, kind)
	}
}

// ParseKind is the deserialization boundary: every byte outside the wire
// set must be rejected, not coerced to an operable kind.
func TestParseKind_RejectsUnassignedBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if Kind(b).IsValid() {
			continue
		}

		kind, err := ParseKind(b)
		require.Error(t, err, "byte %d should be rejected", i)
		require.Equal(t, KindUnknown, kind)
	}
}
