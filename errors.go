package zjson

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the last failure recorded on a Context. Its members
// are a 1:1 mirror of the errors a parse, mutation, or serialize operation
// can report.
type ErrorKind int

// Error kinds, surfaced via Context.Err.
const (
	// ErrKindNone means the last operation succeeded.
	ErrKindNone ErrorKind = iota
	// ErrKindIncomplete means the buffer ended mid-value.
	ErrKindIncomplete
	// ErrKindUnexpected means a disallowed byte was seen in the current context.
	ErrKindUnexpected
	// ErrKindNumber means a numeric lexeme was malformed.
	ErrKindNumber
	// ErrKindString means a string was overlong, unterminated, or had a bad \u escape.
	ErrKindString
	// ErrKindDepth means nesting exceeded the configured maximum.
	ErrKindDepth
	// ErrKindNodes means the node-count limit was exceeded.
	ErrKindNodes
	// ErrKindComment is reserved; this package accepts no JSON comments.
	ErrKindComment
	// ErrKindMemAlloc means a node allocation failed (fixed-pool mode only).
	ErrKindMemAlloc
	// ErrKindNullPtr means a required argument was nil.
	ErrKindNullPtr
	// ErrKindOverflow means the output buffer was too small during serialization.
	ErrKindOverflow
	// ErrKindNotAContainer means an insertion's parent was not Object/Array.
	ErrKindNotAContainer
	// ErrKindType means an unknown node type was found during serialization.
	ErrKindType
	// ErrKindNoString means an object member is missing its key.
	ErrKindNoString
)

var errorKindNames = [...]string{
	"ok", "incomplete", "unexpected", "number", "string", "depth", "nodes",
	"comment", "memalloc", "nullptr", "overflow", "notacontainer", "type", "nostring",
}

// String returns a short lowercase name for the error kind.
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return "unknown"
	}
	return errorKindNames[k]
}

// Sentinel errors, one per failure family. A returned error always wraps
// exactly one of these via %w, so callers may use errors.Is in addition to
// inspecting Context.Err() for the precise ErrorKind.
var (
	// ErrParse covers malformed input: unexpected bytes, bad numbers,
	// bad strings, incomplete buffers, and exceeded nesting depth.
	ErrParse = errors.New("zjson: parse error")
	// ErrNodesExceeded means the configured node-count limit was reached.
	ErrNodesExceeded = errors.New("zjson: node limit exceeded")
	// ErrMemAlloc means a fixed-capacity pool had no free slot.
	ErrMemAlloc = errors.New("zjson: allocation error")
	// ErrNullPointer means a required argument was nil.
	ErrNullPointer = errors.New("zjson: null pointer")
	// ErrOverflow means the output buffer was too small.
	ErrOverflow = errors.New("zjson: output buffer overflow")
	// ErrNotAContainer means the target node is not an Object or Array.
	ErrNotAContainer = errors.New("zjson: not a container")
	// ErrType means the value is not the requested type, or an unknown
	// node type was encountered during serialization.
	ErrType = errors.New("zjson: type error")
	// ErrNoString means a non-empty object's first member has no key.
	ErrNoString = errors.New("zjson: missing key")
)

// setErr records kind on the context and returns a wrapped sentinel error
// carrying the byte position and a human-readable reason.
func (ctx *Context) setErr(kind ErrorKind, sentinel error, reason string) error {
	ctx.err = kind
	return fmt.Errorf("%w: %s at byte %d", sentinel, reason, ctx.pos)
}
