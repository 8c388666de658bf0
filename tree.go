package zjson

// GetNode returns the first child of parent whose key matches, or the
// zero Node and false if parent is not a container or has no such
// member. Ported from json_get_node in original_source/src/json_clib.c.
func GetNode(parent Node, key string) (Node, bool) {
	if !parent.valid() || !parent.Type().IsContainer() {
		return Node{}, false
	}
	for child := parent.FirstChild(); child.valid(); child = child.Next() {
		if child.Key() == key {
			return child, true
		}
	}
	return Node{}, false
}

// GetElement returns the index'th child of parent (0-based), or the zero
// Node and false if parent is not a container or index is out of range.
// Ported from json_get_element.
func GetElement(parent Node, index int) (Node, bool) {
	if !parent.valid() || !parent.Type().IsContainer() || index < 0 {
		return Node{}, false
	}
	child := parent.FirstChild()
	for ; index > 0 && child.valid(); index-- {
		child = child.Next()
	}
	if !child.valid() {
		return Node{}, false
	}
	return child, true
}

// CountElements returns the number of direct children of parent, or -1 if
// parent is not Array or Object. Ported from json_get_nelements.
func CountElements(parent Node) int {
	if !parent.valid() || !parent.Type().IsContainer() {
		return -1
	}
	n := 0
	for child := parent.FirstChild(); child.valid(); child = child.Next() {
		n++
	}
	return n
}

// getPrev returns nd's previous sibling, or the zero Node if nd is the
// first child (or the root). Ported from the static json_get_prev.
func getPrev(nd Node) Node {
	if !nd.valid() {
		return Node{}
	}
	parent := nd.Parent()
	if !parent.valid() {
		return Node{}
	}
	child := parent.FirstChild()
	if !child.valid() || child.idx == nd.idx {
		return Node{}
	}
	for child.n().next != nd.idx {
		child = child.Next()
	}
	return child
}

// newChild allocates a node of the given type/key on ctx. key is "" for
// array elements; callers attach it to the tree afterward.
func (ctx *Context) newChild(typ Type, key string) (Node, error) {
	idx, err := ctx.alloc(typ)
	if err != nil {
		return Node{}, err
	}
	ctx.pool[idx].key = key
	return Node{ctx: ctx, idx: idx}, nil
}

// AddLast appends a new node as parent's last child (or as ctx's root, if
// parent is the zero Node), and returns it. Ported from json_add_last.
func (ctx *Context) AddLast(parent Node, typ Type, key string) (Node, error) {
	if ctx == nil {
		return Node{}, ErrNullPointer
	}
	if parent.valid() && !parent.Type().IsContainer() {
		return Node{}, ctx.setErr(ErrKindNotAContainer, ErrNotAContainer, "parent must be array or object")
	}
	nd, err := ctx.newChild(typ, key)
	if err != nil {
		return Node{}, err
	}
	if !parent.valid() {
		ctx.root = nd.idx
		return nd, nil
	}
	nd.n().parent = parent.idx
	if first := parent.FirstChild(); first.valid() {
		last := first
		for last.n().next != nilIdx {
			last = last.Next()
		}
		last.n().next = nd.idx
	} else {
		parent.n().firstChild = nd.idx
	}
	return nd, nil
}

// AddFirst prepends a new node as parent's first child (or as ctx's root,
// if parent is the zero Node), and returns it. Ported from
// json_add_first, with the nil-check-after-dereference bug fixed: the ctx
// nil check happens before any field access, applied identically to all
// four Add* entry points.
func (ctx *Context) AddFirst(parent Node, typ Type, key string) (Node, error) {
	if ctx == nil {
		return Node{}, ErrNullPointer
	}
	if parent.valid() && !parent.Type().IsContainer() {
		return Node{}, ctx.setErr(ErrKindNotAContainer, ErrNotAContainer, "parent must be array or object")
	}
	nd, err := ctx.newChild(typ, key)
	if err != nil {
		return Node{}, err
	}
	if !parent.valid() {
		ctx.root = nd.idx
		return nd, nil
	}
	nd.n().parent = parent.idx
	nd.n().next = parent.n().firstChild
	parent.n().firstChild = nd.idx
	return nd, nil
}

// AddAfter inserts a new node immediately after nd as a sibling, and
// returns it. Ported from json_add_after.
func (ctx *Context) AddAfter(nd Node, typ Type, key string) (Node, error) {
	if ctx == nil {
		return Node{}, ErrNullPointer
	}
	if !nd.valid() {
		return Node{}, ctx.setErr(ErrKindNullPtr, ErrNullPointer, "invalid node")
	}
	n, err := ctx.newChild(typ, key)
	if err != nil {
		return Node{}, err
	}
	n.n().parent = nd.n().parent
	n.n().next = nd.n().next
	nd.n().next = n.idx
	return n, nil
}

// AddBefore inserts a new node immediately before nd as a sibling, and
// returns it. Ported from json_add_before.
func (ctx *Context) AddBefore(nd Node, typ Type, key string) (Node, error) {
	if ctx == nil {
		return Node{}, ErrNullPointer
	}
	if !nd.valid() {
		return Node{}, ctx.setErr(ErrKindNullPtr, ErrNullPointer, "invalid node")
	}
	parent := nd.Parent()
	if !parent.valid() {
		// nd is the root: there is no sibling list to insert into.
		return Node{}, ctx.setErr(ErrKindNotAContainer, ErrNotAContainer, "cannot insert before the root")
	}
	n, err := ctx.newChild(typ, key)
	if err != nil {
		return Node{}, err
	}
	n.n().parent = nd.n().parent
	n.n().next = nd.idx
	if prev := getPrev(nd); prev.valid() {
		prev.n().next = n.idx
	} else {
		parent.n().firstChild = n.idx
	}
	return n, nil
}

// RemoveNode detaches nd from the tree and frees it along with its
// entire subtree, returning arena slots to the free list. Ported from
// json_remove_node/json_free_all.
func (ctx *Context) RemoveNode(nd Node) {
	if ctx == nil || !nd.valid() {
		return
	}
	if prev := getPrev(nd); prev.valid() {
		prev.n().next = nd.n().next
	} else if parent := nd.Parent(); parent.valid() {
		parent.n().firstChild = nd.n().next
	} else {
		ctx.root = nilIdx
	}
	ctx.freeSubtree(nd.idx)
}

// freeSubtree recursively frees nd and all of its descendants.
func (ctx *Context) freeSubtree(idx int32) {
	child := ctx.pool[idx].firstChild
	for child != nilIdx {
		next := ctx.pool[child].next
		ctx.freeSubtree(child)
		child = next
	}
	ctx.free(idx)
}
