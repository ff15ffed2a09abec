package shrimply

import "strings"

func buildStringModule() *Module {
	mod := newModule("string", "<std::string>")
	mod.Functions["substring"] = &HostFunction{Name: "substring", Fn: hostSubstring}
	mod.Functions["find"] = &HostFunction{Name: "find", Fn: hostFind}
	mod.Functions["upper"] = &HostFunction{Name: "upper", Fn: hostUpper}
	mod.Functions["lower"] = &HostFunction{Name: "lower", Fn: hostLower}
	mod.Functions["byte"] = &HostFunction{Name: "byte", Fn: hostByte}
	mod.Functions["char"] = &HostFunction{Name: "char", Fn: hostChar}
	return mod
}

// hostSubstring implements substring(s, start, end) with end read as a
// length, not an end index: the result is s[start : start+min(end,
// len(s)-start)]. This is the exact semantics of C++'s
// std::string::substr(pos, len), not Go slice notation.
func hostSubstring(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 3 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "string::substring expects (string, start, end)")
	}
	s := args[0].Str
	start, ok1 := AsInteger(args[1])
	length, ok2 := AsInteger(args[2])
	if !ok1 || !ok2 {
		return Null, newRuntimeError(frame, "string::substring expects integer start and end")
	}
	if start < 0 || start > int64(len(s)) || length < 0 || length > int64(len(s)) {
		return Null, newRuntimeError(frame, "string::substring index out of range")
	}
	if start > length {
		return Null, newRuntimeError(frame, "string::substring start greater than end")
	}
	remain := int64(len(s)) - start
	if length > remain {
		length = remain
	}
	return Str(s[start : start+length]), nil
}

// hostFind implements find(hay, needle, [start]), preserving the
// pinned full-string-length edge case: when needle and hay are the
// same byte length (independent of start), the result collapses to a
// 1/0 equality flag rather than a byte offset.
func hostFind(frame *Stackframe, args []Value) (Value, error) {
	if len(args) < 2 || len(args) > 3 || args[0].Tag != TagString || args[1].Tag != TagString {
		return Null, newRuntimeError(frame, "string::find expects (string, string, [start])")
	}
	hay, needle := args[0].Str, args[1].Str
	var start int64
	if len(args) == 3 {
		v, ok := AsInteger(args[2])
		if !ok {
			return Null, newRuntimeError(frame, "string::find expects an integer start")
		}
		start = v
	}
	if start < 0 {
		start = 0
	}
	if int64(len(needle))+start > int64(len(hay)) {
		return Int(-1), nil
	}
	if len(needle) == len(hay) {
		if hay == needle {
			return Int(1), nil
		}
		return Int(0), nil
	}
	idx := strings.Index(hay[start:], needle)
	if idx < 0 {
		return Int(-1), nil
	}
	return Int(start + int64(idx)), nil
}

func hostUpper(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "string::upper expects (string)")
	}
	return Str(strings.ToUpper(args[0].Str)), nil
}

func hostLower(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "string::lower expects (string)")
	}
	return Str(strings.ToLower(args[0].Str)), nil
}

// hostByte returns the byte value at index i (default 0) of s as an
// Integer.
func hostByte(frame *Stackframe, args []Value) (Value, error) {
	if len(args) < 1 || len(args) > 2 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "string::byte expects (string, [index])")
	}
	var idx int64
	if len(args) == 2 {
		v, ok := AsInteger(args[1])
		if !ok {
			return Null, newRuntimeError(frame, "string::byte expects an integer index")
		}
		idx = v
	}
	s := args[0].Str
	if idx < 0 || idx >= int64(len(s)) {
		return Null, newRuntimeError(frame, "string::byte index out of range")
	}
	return Int(int64(s[idx])), nil
}

// hostChar returns the single-byte string whose byte value is i.
func hostChar(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "string::char expects (integer)")
	}
	i, ok := AsInteger(args[0])
	if !ok || i < 1 || i > 255 {
		return Null, newRuntimeError(frame, "string::char argument out of byte range")
	}
	return Str(string([]byte{byte(i)})), nil
}
