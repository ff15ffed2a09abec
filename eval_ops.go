package shrimply

import "strings"

// evalBinaryOp handles the three operator forms that need something
// other than eager evaluation of both operands: assignment (needs a
// place, not a value) and the two short-circuiting boolean operators
// (must not evaluate their right side unless it's needed). Every other
// operator delegates to applyBinary once both sides are evaluated.
func evalBinaryOp(b *BinaryOp, frame *Stackframe) Value {
	frame.sourcePos = b.Pos

	switch b.Op {
	case "=":
		v := Result(b.RHS, frame)
		Pointer(b.LHS, frame).Set(v)
		return Null

	case "&&":
		if !AsBoolean(Result(b.LHS, frame)) {
			return Bool(false)
		}
		return Bool(AsBoolean(Result(b.RHS, frame)))

	case "||":
		if AsBoolean(Result(b.LHS, frame)) {
			return Bool(true)
		}
		return Bool(AsBoolean(Result(b.RHS, frame)))
	}

	lhs := Result(b.LHS, frame)
	rhs := Result(b.RHS, frame)
	return applyBinary(b.Op, lhs, rhs, frame)
}

func applyBinary(op string, lhs, rhs Value, frame *Stackframe) Value {
	switch op {
	case ".":
		return indexValue(lhs, rhs, frame)

	case "+":
		if lhs.Tag == TagString || rhs.Tag == TagString {
			return Str(AsString(lhs) + AsString(rhs))
		}
		if lhs.Tag == TagInteger && rhs.Tag == TagInteger {
			return Int(lhs.Integer + rhs.Integer)
		}
		a, ok1 := AsNumber(lhs)
		c, ok2 := AsNumber(rhs)
		if !ok1 || !ok2 {
			panic(newRuntimeError(frame, "cannot add %s and %s", lhs.Tag, rhs.Tag))
		}
		return Num(a + c)

	case "-":
		return arith(op, lhs, rhs, frame)
	case "*":
		if repeated, ok := tryStringRepeat(lhs, rhs); ok {
			return repeated
		}
		return arith(op, lhs, rhs, frame)
	case "/":
		return arith(op, lhs, rhs, frame)
	case "%":
		return arith(op, lhs, rhs, frame)

	case "==":
		return Bool(lhs.Equal(rhs))
	case "!=":
		return Bool(!lhs.Equal(rhs))

	case "<", ">", "<=", ">=":
		return compare(op, lhs, rhs)

	case "&", "|", "<<", ">>":
		a, ok1 := AsInteger(lhs)
		c, ok2 := AsInteger(rhs)
		if !ok1 || !ok2 {
			panic(newRuntimeError(frame, "%s requires integers, got %s and %s", op, lhs.Tag, rhs.Tag))
		}
		switch op {
		case "&":
			return Int(a & c)
		case "|":
			return Int(a | c)
		case "<<":
			return Int(a << uint(c))
		default:
			return Int(a >> uint(c))
		}

	case "^":
		if lhs.Tag == TagBoolean && rhs.Tag == TagBoolean {
			return Bool(lhs.Boolean != rhs.Boolean)
		}
		a, ok1 := AsInteger(lhs)
		c, ok2 := AsInteger(rhs)
		if !ok1 || !ok2 {
			panic(newRuntimeError(frame, "^ requires two booleans or two integers, got %s and %s", lhs.Tag, rhs.Tag))
		}
		return Int(a ^ c)

	default:
		panic(newRuntimeError(frame, "internal error: unhandled operator %q", op))
	}
}

// indexValue implements the "." index operator: a String indexes to a
// single-byte substring, a List indexes by integer position, a Map
// indexes by string key (to_string of the right-hand side).
func indexValue(container, key Value, frame *Stackframe) Value {
	switch container.Tag {
	case TagString:
		idx, ok := AsInteger(key)
		if !ok || idx < 0 || idx >= int64(len(container.Str)) {
			panic(newRuntimeError(frame, "string index out of range"))
		}
		return Str(string(container.Str[idx]))
	case TagList:
		idx, ok := AsInteger(key)
		if !ok || idx < 0 || idx >= int64(len(container.List.items)) {
			panic(newRuntimeError(frame, "list index out of range"))
		}
		return container.List.items[idx]
	case TagMap:
		k := AsString(key)
		v, ok := container.Map.entries[k]
		if !ok {
			panic(newRuntimeError(frame, "index does not exist in map"))
		}
		return v
	default:
		panic(newRuntimeError(frame, "cannot index into %s", container.Tag))
	}
}

// tryStringRepeat implements String * Integer (either operand order):
// a negative or zero repeat count yields the empty string rather than
// an error, matching the pinned edge case.
func tryStringRepeat(lhs, rhs Value) (Value, bool) {
	var s string
	var n int64
	switch {
	case lhs.Tag == TagString && rhs.Tag == TagInteger:
		s, n = lhs.Str, rhs.Integer
	case rhs.Tag == TagString && lhs.Tag == TagInteger:
		s, n = rhs.Str, lhs.Integer
	default:
		return Value{}, false
	}
	if n <= 0 {
		return Str(""), true
	}
	return Str(strings.Repeat(s, int(n))), true
}

func arith(op string, lhs, rhs Value, frame *Stackframe) Value {
	if lhs.Tag == TagInteger && rhs.Tag == TagInteger {
		a, c := lhs.Integer, rhs.Integer
		switch op {
		case "-":
			return Int(a - c)
		case "*":
			return Int(a * c)
		case "/":
			if c == 0 {
				panic(newRuntimeError(frame, "integer division by zero"))
			}
			return Int(a / c)
		case "%":
			if c == 0 {
				panic(newRuntimeError(frame, "integer modulo by zero"))
			}
			return Int(a % c)
		}
	}
	a, ok1 := AsNumber(lhs)
	c, ok2 := AsNumber(rhs)
	if !ok1 || !ok2 {
		panic(newRuntimeError(frame, "%s requires numbers, got %s and %s", op, lhs.Tag, rhs.Tag))
	}
	switch op {
	case "-":
		return Num(a - c)
	case "*":
		return Num(a * c)
	case "/":
		return Num(a / c)
	default:
		return Num(mod(a, c))
	}
}

func mod(a, b float64) float64 {
	r := a - b*float64(int64(a/b))
	return r
}

// compare implements the ordering operators: numeric comparison when
// both sides coerce to a number, otherwise lexicographic comparison of
// their string forms.
func compare(op string, lhs, rhs Value) Value {
	if a, ok1 := AsNumber(lhs); ok1 {
		if c, ok2 := AsNumber(rhs); ok2 {
			return Bool(numericCompare(op, a, c))
		}
	}
	a, c := AsString(lhs), AsString(rhs)
	switch op {
	case "<":
		return Bool(a < c)
	case ">":
		return Bool(a > c)
	case "<=":
		return Bool(a <= c)
	default:
		return Bool(a >= c)
	}
}

func numericCompare(op string, a, c float64) bool {
	switch op {
	case "<":
		return a < c
	case ">":
		return a > c
	case "<=":
		return a <= c
	default:
		return a >= c
	}
}
