package zjson

const (
	defaultMaxStringLen = 512
	defaultMaxDepth     = 10
	defaultMaxNodes     = 1000000
)

// Context owns one parsed document: its node arena, the buffer it was
// last parsed from, and the configured limits that bounded the
// parse. A Context is not safe for concurrent use; create one per
// document, per spec.md §5.
type Context struct {
	pool     []node
	freeHead int32
	growable bool

	buf    []byte
	decode bool
	root   int32

	pos   int
	depth int
	nused int
	err   ErrorKind

	maxStringLen int
	maxDepth     int
	maxNodes     int
	maxExponent  int
}

// Option configures a Context at construction time, replacing the
// original library's compile-time #define limits (spec.md §6).
type Option func(*Context)

// WithFixedPool preallocates the node arena at exactly n entries and
// disables growth past it; allocation beyond n reports ErrMemAlloc,
// matching JSON_NO_MEMALLOC in the original header. Mutually exclusive
// with the default growable arena.
func WithFixedPool(n int) Option {
	return func(ctx *Context) {
		ctx.growable = false
		ctx.pool = make([]node, 0, n)
	}
}

// WithMaxDepth overrides the default maximum container nesting depth (10).
func WithMaxDepth(n int) Option {
	return func(ctx *Context) { ctx.maxDepth = n }
}

// WithMaxStringLen overrides the default maximum string length (512
// bytes), counted in source bytes: an escape sequence counts at its
// encoded length, not its decoded one.
func WithMaxStringLen(n int) Option {
	return func(ctx *Context) { ctx.maxStringLen = n }
}

// WithMaxNodes overrides the default maximum total node count (1,000,000).
func WithMaxNodes(n int) Option {
	return func(ctx *Context) { ctx.maxNodes = n }
}

// WithMaxExponent overrides the default maximum absolute decimal exponent
// (511) accepted by the number parser.
func WithMaxExponent(n int) Option {
	return func(ctx *Context) { ctx.maxExponent = n }
}

// NewContext builds a Context ready to Parse, with a growable node arena
// by default (heap-equivalent mode). Pass WithFixedPool to preallocate a
// bounded arena instead.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		growable:     true,
		freeHead:     nilIdx,
		root:         nilIdx,
		maxStringLen: defaultMaxStringLen,
		maxDepth:     defaultMaxDepth,
		maxNodes:     defaultMaxNodes,
		maxExponent:  defaultMaxExponent,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Err returns the error kind recorded by the last failing operation, or
// ErrKindNone if no operation has failed.
func (ctx *Context) Err() ErrorKind {
	return ctx.err
}

// CountElements reports the number of live nodes currently in the arena.
func (ctx *Context) CountElements() int {
	return ctx.nused
}

// alloc reserves a node slot, reusing a freed slot (O(1), from either
// pool mode) before growing the arena. Growth itself only happens in
// growable mode; a fixed pool reports ErrMemAlloc once both its free list
// and its preallocated capacity are exhausted.
func (ctx *Context) alloc(typ Type) (int32, error) {
	if ctx.nused >= ctx.maxNodes {
		return nilIdx, ctx.setErr(ErrKindNodes, ErrNodesExceeded, "node limit exceeded")
	}
	if ctx.freeHead != nilIdx {
		idx := ctx.freeHead
		slot := &ctx.pool[idx]
		ctx.freeHead = slot.next
		*slot = node{typ: typ, parent: nilIdx, next: nilIdx, firstChild: nilIdx}
		ctx.nused++
		return idx, nil
	}
	if !ctx.growable && len(ctx.pool) >= cap(ctx.pool) {
		return nilIdx, ctx.setErr(ErrKindMemAlloc, ErrMemAlloc, "fixed pool exhausted")
	}
	ctx.pool = append(ctx.pool, node{typ: typ, parent: nilIdx, next: nilIdx, firstChild: nilIdx})
	ctx.nused++
	return int32(len(ctx.pool) - 1), nil
}

// free marks idx Dummy and threads it onto the free list for reuse by a
// later alloc, in either pool mode.
func (ctx *Context) free(idx int32) {
	ctx.pool[idx] = node{typ: TypeDummy, parent: nilIdx, firstChild: nilIdx, next: ctx.freeHead}
	ctx.freeHead = idx
	ctx.nused--
}
