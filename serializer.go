package zjson

const hexDigits = "0123456789abcdef"

// ToString serializes nd and its subtree into out, returning the number
// of bytes written (a trailing NUL is also written at out[n], so out
// must have room for n+1 bytes). compact selects single-line output;
// otherwise each object gets tab-indented, CRLF-terminated members.
// Ported from json_to_string/print_value/print_value_fmt in
// original_source/src/json_clib.c. Never writes past len(out).
func (ctx *Context) ToString(nd Node, out []byte, compact bool) (int, error) {
	if !nd.valid() {
		if ctx == nil {
			return 0, ErrNullPointer
		}
		return 0, ctx.setErr(ErrKindNullPtr, ErrNullPointer, "invalid node")
	}
	var w int
	var err error
	if compact {
		w, err = ctx.printValue(nd, out, 0)
	} else {
		ctx.depth = 0
		w, err = ctx.printValueFmt(nd, out, 0)
	}
	if err != nil {
		return 0, err
	}
	if w >= len(out) {
		return 0, ctx.overflow()
	}
	out[w] = 0
	return w, nil
}

func (ctx *Context) overflow() error {
	return ctx.setErr(ErrKindOverflow, ErrOverflow, "output buffer overflow")
}

// writeStr writes s as a quoted, escaped JSON string at out[w:] and
// returns the new write offset.
func (ctx *Context) writeStr(s string, out []byte, w int) (int, error) {
	nw, ok := printStr(s, out, w)
	if !ok {
		return w, ctx.overflow()
	}
	return nw, nil
}

// printStr writes s as a quoted JSON string literal at out[w:], escaping
// the characters json.org requires (and control characters below 0x20
// via \u00XX), and returns the new offset and whether it fit. Ported from
// print_str in original_source/src/json_clib.c — that function writes the
// raw control byte after the backslash for the two-character escapes
// (\n, \t, ...) rather than the conventional escape letter; this is
// fixed here since the original behavior produces invalid JSON text
// (documented in DESIGN.md, not one of the named REDESIGN FLAGS but
// necessary for the output to round-trip at all).
func printStr(s string, out []byte, w int) (int, bool) {
	if w+2 > len(out) {
		return w, false
	}
	out[w] = '"'
	w++
	for i := 0; i < len(s); i++ {
		ch := s[i]
		var escLetter byte
		switch ch {
		case '\\':
			escLetter = '\\'
		case '"':
			escLetter = '"'
		case '/':
			escLetter = '/'
		case '\b':
			escLetter = 'b'
		case '\f':
			escLetter = 'f'
		case '\n':
			escLetter = 'n'
		case '\r':
			escLetter = 'r'
		case '\t':
			escLetter = 't'
		}
		switch {
		case escLetter != 0:
			if w+2 > len(out) {
				return w, false
			}
			out[w] = '\\'
			out[w+1] = escLetter
			w += 2
		case ch <= 0x1f:
			if w+6 > len(out) {
				return w, false
			}
			out[w] = '\\'
			out[w+1] = 'u'
			out[w+2] = '0'
			out[w+3] = '0'
			out[w+4] = hexDigits[(ch>>4)&0xf]
			out[w+5] = hexDigits[ch&0xf]
			w += 6
		default:
			if w+1 > len(out) {
				return w, false
			}
			out[w] = ch
			w++
		}
	}
	if w+1 > len(out) {
		return w, false
	}
	out[w] = '"'
	w++
	return w, true
}

// printValue writes nd (and its subtree) at out[w:] compactly, with no
// inserted whitespace. Ported from print_value.
func (ctx *Context) printValue(nd Node, out []byte, w int) (int, error) {
	switch nd.Type() {
	case TypeDummy:
		if w+4 > len(out) {
			return w, ctx.overflow()
		}
		copy(out[w:], "null")
		return w + 4, nil
	case TypeString:
		s, _ := nd.AsString()
		return ctx.writeStr(s, out, w)
	case TypeInteger:
		iv, _ := nd.AsInteger()
		n, err := itoa(iv, out[w:])
		if err != nil {
			return w, ctx.overflow()
		}
		return w + n, nil
	case TypeDouble:
		dv, _ := nd.AsDouble()
		n, err := dtoa(dv, out[w:])
		if err != nil {
			return w, ctx.overflow()
		}
		return w + n, nil
	case TypeBool:
		b, _ := nd.AsBool()
		lit := "false"
		if b {
			lit = "true"
		}
		if w+len(lit) > len(out) {
			return w, ctx.overflow()
		}
		copy(out[w:], lit)
		return w + len(lit), nil
	case TypeArray:
		return ctx.printArray(nd, out, w, (*Context).printValue)
	case TypeObject:
		return ctx.printObjectCompact(nd, out, w)
	default:
		return w, ctx.setErr(ErrKindType, ErrType, "unexpected value type")
	}
}

// printArray writes nd (an Array) at out[w:] using elemFn to emit each
// child; elemFn is printValue for compact output or printValueFmt for
// indented output — arrays themselves never gain inserted whitespace in
// either mode, matching the original formatter (only objects get
// indented). An empty array always renders as "[]" with no separator,
// preserved intentionally in indented mode per spec.md §9.
func (ctx *Context) printArray(nd Node, out []byte, w int, elemFn func(*Context, Node, []byte, int) (int, error)) (int, error) {
	if w+2 > len(out) {
		return w, ctx.overflow()
	}
	out[w] = '['
	w++
	child := nd.FirstChild()
	if !child.valid() {
		out[w] = ']'
		return w + 1, nil
	}
	w, err := elemFn(ctx, child, out, w)
	if err != nil {
		return w, err
	}
	for child = child.Next(); child.valid(); child = child.Next() {
		if w+1 > len(out) {
			return w, ctx.overflow()
		}
		out[w] = ','
		w++
		w, err = elemFn(ctx, child, out, w)
		if err != nil {
			return w, err
		}
	}
	if w+1 > len(out) {
		return w, ctx.overflow()
	}
	out[w] = ']'
	return w + 1, nil
}

// printObjectCompact writes nd (an Object) at out[w:] with no inserted
// whitespace. Ported from the JSON_OBJECT branch of print_value.
func (ctx *Context) printObjectCompact(nd Node, out []byte, w int) (int, error) {
	if w+2 > len(out) {
		return w, ctx.overflow()
	}
	out[w] = '{'
	w++
	child := nd.FirstChild()
	if !child.valid() {
		out[w] = '}'
		return w + 1, nil
	}
	if child.Key() == "" {
		return w, ctx.setErr(ErrKindNoString, ErrNoString, "missing key in non-empty object")
	}
	w, err := ctx.writeStr(child.Key(), out, w)
	if err != nil {
		return w, err
	}
	if w+1 > len(out) {
		return w, ctx.overflow()
	}
	out[w] = ':'
	w++
	w, err = ctx.printValue(child, out, w)
	if err != nil {
		return w, err
	}
	for child = child.Next(); child.valid(); child = child.Next() {
		if w+1 > len(out) {
			return w, ctx.overflow()
		}
		out[w] = ','
		w++
		w, err = ctx.writeStr(child.Key(), out, w)
		if err != nil {
			return w, err
		}
		if w+1 > len(out) {
			return w, ctx.overflow()
		}
		out[w] = ':'
		w++
		w, err = ctx.printValue(child, out, w)
		if err != nil {
			return w, err
		}
	}
	if w+1 > len(out) {
		return w, ctx.overflow()
	}
	out[w] = '}'
	return w + 1, nil
}

// printValueFmt writes nd (and its subtree) at out[w:] indented: objects
// get CRLF-separated, tab-indented members; an array adds no whitespace
// of its own around '[', ',' and ']' (the original formatter's design,
// not an omission), though an object element still starts with its own
// CRLF and tabs (see printObjectFmt).
// ctx.depth tracks the current object-nesting indent level and must be 0
// before the top-level call (ToString resets it). Ported from
// print_value_fmt.
func (ctx *Context) printValueFmt(nd Node, out []byte, w int) (int, error) {
	switch nd.Type() {
	case TypeArray:
		return ctx.printArray(nd, out, w, (*Context).printValueFmt)
	case TypeObject:
		return ctx.printObjectFmt(nd, out, w)
	default:
		return ctx.printValue(nd, out, w)
	}
}

// printObjectFmt writes nd (an Object) at out[w:] with CRLF-separated,
// tab-indented members. Ported from the JSON_OBJECT branch of
// print_value_fmt, including its three-way choice of leading whitespace
// depending on what immediately precedes the object in out: a bare
// top-level object gets none, one following "key: " gets trailing tabs
// only, and one appearing as an array element (or otherwise) gets a
// leading CRLF+tabs to position its own brace.
func (ctx *Context) printObjectFmt(nd Node, out []byte, w int) (int, error) {
	depth := ctx.depth
	switch {
	case depth <= 0:
		if w+3 > len(out) {
			return w, ctx.overflow()
		}
		out[w], out[w+1], out[w+2] = '{', '\r', '\n'
		w += 3
	case out[w-1] == ' ':
		if w+3+depth > len(out) {
			return w, ctx.overflow()
		}
		out[w], out[w+1], out[w+2] = '{', '\r', '\n'
		w += 3
		for i := 0; i < depth; i++ {
			out[w] = '\t'
			w++
		}
	default:
		if w+5+depth*2 > len(out) {
			return w, ctx.overflow()
		}
		out[w], out[w+1] = '\r', '\n'
		w += 2
		for i := 0; i < depth; i++ {
			out[w] = '\t'
			w++
		}
		out[w], out[w+1], out[w+2] = '{', '\r', '\n'
		w += 3
		for i := 0; i < depth; i++ {
			out[w] = '\t'
			w++
		}
	}
	ctx.depth++
	child := nd.FirstChild()
	if !child.valid() {
		if w+1 > len(out) {
			return w, ctx.overflow()
		}
		out[w] = '}'
		ctx.depth--
		return w + 1, nil
	}
	if child.Key() == "" {
		return w, ctx.setErr(ErrKindNoString, ErrNoString, "missing key in non-empty object")
	}
	w, err := ctx.writeStr(child.Key(), out, w)
	if err != nil {
		return w, err
	}
	if w+2 > len(out) {
		return w, ctx.overflow()
	}
	out[w], out[w+1] = ':', ' '
	w += 2
	w, err = ctx.printValueFmt(child, out, w)
	if err != nil {
		return w, err
	}
	for child = child.Next(); child.valid(); child = child.Next() {
		if w+3+(ctx.depth-1) > len(out) {
			return w, ctx.overflow()
		}
		out[w], out[w+1], out[w+2] = ',', '\r', '\n'
		w += 3
		for i := 0; i < ctx.depth-1; i++ {
			out[w] = '\t'
			w++
		}
		w, err = ctx.writeStr(child.Key(), out, w)
		if err != nil {
			return w, err
		}
		if w+2 > len(out) {
			return w, ctx.overflow()
		}
		out[w], out[w+1] = ':', ' '
		w += 2
		w, err = ctx.printValueFmt(child, out, w)
		if err != nil {
			return w, err
		}
	}
	ctx.depth--
	if w+3+ctx.depth > len(out) {
		return w, ctx.overflow()
	}
	out[w], out[w+1] = '\r', '\n'
	w += 2
	for i := 0; i < ctx.depth; i++ {
		out[w] = '\t'
		w++
	}
	out[w] = '}'
	return w + 1, nil
}
