package dimacsparser

import "errors"

// Sentinel errors returned by Parse. Callers should branch with errors.Is;
// contextual detail (file path, line content) is attached with %w, never by
// formatting it into the sentinel itself.
var (
	// ErrIoOpenFailed indicates the .gr or .co file could not be opened.
	ErrIoOpenFailed = errors.New("dimacsparser: failed to open dataset file")

	// ErrHeaderMissing indicates an a or e line was encountered before the
	// p header of the arc file, or the arc file has no p header at all. The
	// coordinate file's p line is optional.
	ErrHeaderMissing = errors.New("dimacsparser: missing p header line")

	// ErrHeaderMalformed indicates an arc-file p line whose kind is not sp,
	// or whose n or m field is missing or non-numeric. Tokens after m are
	// ignored.
	ErrHeaderMalformed = errors.New("dimacsparser: malformed p header line")

	// ErrCountMismatch indicates the number of arc lines read diverges from
	// the m declared in the header, or row_ptr[n] disagrees with it after
	// the prefix sum.
	ErrCountMismatch = errors.New("dimacsparser: declared count diverges from the stream")

	// ErrVertexOutOfRange indicates an arc, edge, or coordinate line
	// references a vertex id outside [1, n].
	ErrVertexOutOfRange = errors.New("dimacsparser: vertex id out of declared range")
)
