package compress

import "io"

// drainInto copies an entire uncompressed stream into dst, treating
// len(dst) as the destination capacity. It returns the number of bytes
// written and:
//
//   - nil when the stream ended within dst (n may be less than len(dst);
//     the caller truncates),
//   - ErrDestinationTooSmall when the stream holds more than len(dst)
//     bytes; dst is full but no byte was written past it,
//   - any other reader error verbatim, for per-backend translation.
//
// Both stream decoders used by this package return io.EOF only at a clean,
// fully validated end of stream, so io.EOF here always means success.
func drainInto(r io.Reader, dst []byte) (int, error) {
	n := 0
	for n < len(dst) {
		m, err := r.Read(dst[n:])
		n += m
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}

	// dst is full; the stream must end exactly here.
	var probe [1]byte
	for {
		m, err := r.Read(probe[:])
		if m > 0 {
			return n, ErrDestinationTooSmall
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}
