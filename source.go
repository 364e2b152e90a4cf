package jslex

// Source is a byte-addressable, NUL-terminated view over a JavaScript
// source buffer. It implements the padded-source-buffer contract spec.md §6
// relies on: Size() is the logical length, and at least one zero byte is
// guaranteed to follow it so the scanner may look a small fixed distance
// past logical end and read zero bytes there.
//
// A Source is exclusively owned by the Lexer built around it for the
// Lexer's lifetime: identifier normalization (§3, §4.7) mutates bytes
// in place.
type Source struct {
	buf []byte // len(buf) == size + padding, buf[size:] is all zero
	size int
}

// padding is the number of guaranteed trailing zero bytes past logical end.
// The widest fixed lookahead any scanner performs is three bytes (maximal
// munch over ">>>="), so three bytes of padding is sufficient; we keep a
// fourth as headroom.
const padding = 4

// NewSource copies text into an internally owned, padded buffer. The
// returned Source never aliases the caller's slice, so later normalization
// writes never surprise the caller.
func NewSource(text []byte) *Source {
	buf := make([]byte, len(text)+padding)
	copy(buf, text)
	return &Source{buf: buf, size: len(text)}
}

// Size returns the logical length of the source, in bytes.
func (s *Source) Size() int { return s.size }

// byteAt returns the byte at offset i, including into the padding region.
// Callers past logical end always see 0.
func (s *Source) byteAt(i int) byte {
	if i < 0 || i >= len(s.buf) {
		return 0
	}
	return s.buf[i]
}

// Slice returns the bytes in [begin, end). The result aliases the Source's
// internal buffer and must not be retained past identifier normalization
// (which may overwrite the same range with a shorter normalized name padded
// with spaces).
func (s *Source) Slice(begin, end int) []byte {
	if begin < 0 {
		begin = 0
	}
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if begin > end {
		begin = end
	}
	return s.buf[begin:end]
}

// normalize rewrites the bytes in [begin, begin+len(encoded)) with encoded,
// then pads the remainder of [begin, end) with ASCII spaces. Used only by
// the identifier scanner's in-place normalization (invariant 3, spec.md §3).
func (s *Source) normalize(begin, end int, encoded []byte) {
	n := copy(s.buf[begin:end], encoded)
	for i := begin + n; i < end; i++ {
		s.buf[i] = ' '
	}
}
