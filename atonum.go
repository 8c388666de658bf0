package zjson

import "math"

// numKind discriminates the result of atonum.
type numKind int8

const (
	numError numKind = iota
	numInteger
	numDouble
	numOverflow
)

// numResult is the discriminated result atonum produces: i (numInteger)
// or f (numDouble) is meaningful, selected by kind. For numOverflow
// neither is; the length of the lexeme to preserve as a string is
// atonum's second return value.
type numResult struct {
	kind numKind
	i    int64
	f    float64
}

// defaultMaxExponent bounds the absolute value of a parsed decimal exponent;
// beyond it the result is guaranteed to underflow/overflow a float64.
// Overridable via Context's configured limit.
const defaultMaxExponent = 511

// powersOfTenSquaring lets atonum build 10^e via repeated squaring,
// combining powers of 2 of 10 bit-by-bit on the exponent: 10, 100, 10^4,
// 10^8, ..., 10^256. Ported from json_atonum's pof_ten table.
var powersOfTenSquaring = [...]float64{
	10, 100, 1e4, 1e8, 1e16, 1e32, 1e64, 1e128, 1e256,
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// atonum parses a strict-JSON number lexeme at the start of buf and
// returns the discriminated result plus the number of bytes consumed.
// Ported from json_atonum in original_source/src/json_clib.c: the integer
// accumulator folds the sign in during accumulation (so math.MinInt64 is
// representable without a post-negation overflow), falls through to
// numOverflow on int64 overflow or a >19-significant-digit mantissa, and
// preserves the original lexeme (including any trailing exponent) on
// overflow so the caller can retain it as a string without precision
// loss.
//
// maxExponent bounds the absolute value of a parsed exponent; pass
// defaultMaxExponent unless the Context was configured with a different
// limit.
func atonum(buf []byte, maxExponent int) (numResult, int) {
	i := 0
	n := len(buf)
	neg := false
	if i < n && buf[i] == '-' {
		neg = true
		i++
	}
	if i >= n || !isDigit(buf[i]) {
		return numResult{kind: numError}, i
	}

	var acc int64
	if buf[i] == '0' {
		i++
		switch {
		case i < n && buf[i] == '.':
			i++
			return atonumFrac(buf, i, neg, 0, 0, maxExponent)
		case i < n && (buf[i] == 'e' || buf[i] == 'E'):
			i++
			return atonumExp(buf, i, neg, 0, maxExponent)
		case i < n && isDigit(buf[i]):
			return numResult{kind: numError}, i // leading zero not allowed
		}
		return numResult{kind: numInteger, i: 0}, i
	}

	d := int64(buf[i] - '0')
	if neg {
		acc = -d
	} else {
		acc = d
	}
	i++

	for i < n {
		c := buf[i]
		switch {
		case isDigit(c):
			nd := int64(c - '0')
			if neg {
				if acc < math.MinInt64/10 || (acc == math.MinInt64/10 && nd > -(math.MinInt64%10)) {
					return atonumOverflow(buf, i, false)
				}
				acc = acc*10 - nd
			} else {
				if acc > math.MaxInt64/10 || (acc == math.MaxInt64/10 && nd > math.MaxInt64%10) {
					return atonumOverflow(buf, i, false)
				}
				acc = acc*10 + nd
			}
			i++
		case c == '.':
			i++
			nBeforeDP := i - 1
			if neg {
				nBeforeDP--
			}
			return atonumFrac(buf, i, neg, acc, nBeforeDP, maxExponent)
		case c == 'e' || c == 'E':
			i++
			return atonumExp(buf, i, neg, float64(acc), maxExponent)
		default:
			return numResult{kind: numInteger, i: acc}, i
		}
	}
	return numResult{kind: numInteger, i: acc}, i
}

// tensMap[k] == 10^k, used to scale a fractional mantissa back down.
var tensMap = [...]float64{
	1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

// atonumFrac continues parsing the fractional part of a number. i points
// just past the decimal point; acc/neg carry the integer part parsed so
// far (nBeforeDP significant digits).
func atonumFrac(buf []byte, i int, neg bool, acc int64, nBeforeDP int, maxExponent int) (numResult, int) {
	n := len(buf)
	if i >= n || !isDigit(buf[i]) {
		return numResult{kind: numError}, i
	}
	nMantissa := nBeforeDP
	for i < n {
		c := buf[i]
		if isDigit(c) {
			if nMantissa > 18 {
				return atonumOverflow(buf, i, true)
			}
			d := int64(c - '0')
			if neg {
				if acc < math.MinInt64/10 || (acc == math.MinInt64/10 && d > -(math.MinInt64%10)) {
					return atonumOverflow(buf, i, true)
				}
				acc = acc*10 - d
			} else {
				if acc > math.MaxInt64/10 || (acc == math.MaxInt64/10 && d > math.MaxInt64%10) {
					return atonumOverflow(buf, i, true)
				}
				acc = acc*10 + d
			}
			nMantissa++
			i++
			continue
		}
		if c == 'e' || c == 'E' {
			i++
			f := float64(acc) / tensMap[nMantissa-nBeforeDP]
			return atonumExp(buf, i, false, f, maxExponent)
		}
		break
	}
	f := float64(acc) / tensMap[nMantissa-nBeforeDP]
	return numResult{kind: numDouble, f: f}, i
}

// atonumExp parses the exponent suffix starting just after 'e'/'E'. base
// is the mantissa value already parsed (as a float64); negApplied is
// ignored (kept for symmetry) since the sign was already folded into
// base by the caller.
func atonumExp(buf []byte, i int, _ bool, base float64, maxExponent int) (numResult, int) {
	n := len(buf)
	negExp := false
	if i < n && (buf[i] == '+' || buf[i] == '-') {
		negExp = buf[i] == '-'
		i++
	}
	if i >= n || !isDigit(buf[i]) {
		return numResult{kind: numError}, i
	}
	for i < n && buf[i] == '0' {
		i++
	}
	rexp := 0
	for i < n && isDigit(buf[i]) {
		rexp = rexp*10 + int(buf[i]-'0')
		if rexp > maxExponent {
			return atonumOverflow(buf, i, true)
		}
		i++
	}
	dexp := 1.0
	for k, e := 0, rexp; e != 0; k++ {
		if e&1 != 0 {
			dexp *= powersOfTenSquaring[k]
		}
		e >>= 1
	}
	if negExp {
		base /= dexp
	} else {
		base *= dexp
	}
	return numResult{kind: numDouble, f: base}, i
}

// atonumOverflow scans to the end of the current numeric lexeme (which
// continues to be syntactically valid JSON even though it cannot be
// represented without precision loss) and reports numOverflow so the
// caller can preserve the full textual lexeme as a string, per spec.md
// §4.2's overflow-as-string fallback. pastPoint is true when called from
// the fractional-part parser, in which case a decimal point cannot
// legally reoccur and is not searched for (mirrors LB_OFL_DEC vs
// LB_OFL_INT in the original source).
func atonumOverflow(buf []byte, i int, pastPoint bool) (numResult, int) {
	n := len(buf)
	// consume the remainder of the integer or fractional digit run
	for i < n && isDigit(buf[i]) {
		i++
	}
	if !pastPoint && i < n && buf[i] == '.' {
		i++
		if i >= n || !isDigit(buf[i]) {
			return numResult{kind: numError}, i
		}
		for i < n && isDigit(buf[i]) {
			i++
		}
	}
	if i < n && (buf[i] == 'e' || buf[i] == 'E') {
		i++
		if i < n && (buf[i] == '+' || buf[i] == '-') {
			i++
		}
		if i >= n || !isDigit(buf[i]) {
			return numResult{kind: numError}, i
		}
		for i < n && isDigit(buf[i]) {
			i++
		}
	}
	return numResult{kind: numOverflow}, i
}
