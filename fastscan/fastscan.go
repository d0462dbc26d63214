package fastscan

// isSpace reports whether b is an ASCII space or tab, the only whitespace
// DIMACS files use between fields on a line.
func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// SkipSpaces advances pos past any run of spaces or tabs, stopping at the
// first other byte or at len(buf).
func SkipSpaces(buf []byte, pos int) int {
	n := len(buf)
	for pos < n && isSpace(buf[pos]) {
		pos++
	}
	return pos
}

// SkipNonSpaces advances pos past any run of bytes that are neither a space,
// a tab, nor a newline, stopping at the first such byte or at len(buf).
func SkipNonSpaces(buf []byte, pos int) int {
	n := len(buf)
	for pos < n && !isSpace(buf[pos]) && buf[pos] != '\n' {
		pos++
	}
	return pos
}

// SkipLine advances pos to just past the next '\n', or to len(buf) if no
// newline remains. Used to discard a line this parser does not recognize
// without aborting the whole scan.
func SkipLine(buf []byte, pos int) int {
	n := len(buf)
	for pos < n && buf[pos] != '\n' {
		pos++
	}
	if pos < n {
		pos++ // consume the newline itself
	}
	return pos
}

// ParseUnsigned reads a run of ASCII digits starting at pos into an unsigned
// integer, stopping at the first non-digit byte or at len(buf). Returns the
// parsed value and the advanced cursor. An empty digit span yields 0.
func ParseUnsigned(buf []byte, pos int) (uint64, int) {
	n := len(buf)
	var x uint64
	for pos < n && IsDigit(buf[pos]) {
		x = x*10 + uint64(buf[pos]-'0')
		pos++
	}
	return x, pos
}

// ParseSigned optionally consumes a leading '-' and then behaves as
// ParseUnsigned, negating the result if a sign was present.
func ParseSigned(buf []byte, pos int) (int64, int) {
	n := len(buf)
	neg := false
	if pos < n && buf[pos] == '-' {
		neg = true
		pos++
	}
	u, pos := ParseUnsigned(buf, pos)
	v := int64(u)
	if neg {
		v = -v
	}
	return v, pos
}
