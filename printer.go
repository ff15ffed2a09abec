package shrimply

import (
	"fmt"
	"strconv"
	"strings"
)

// AsBoolean implements the language's truthiness coercion.
func AsBoolean(v Value) bool {
	switch v.Tag {
	case TagNull:
		return false
	case TagBoolean:
		return v.Boolean
	case TagInteger:
		return v.Integer > 0
	case TagNumber:
		return v.Number > 0 // NaN compares false here, matching spec.
	case TagString:
		return v.Str != ""
	case TagList:
		return len(v.List.items) != 0
	case TagMap:
		return len(v.Map.entries) != 0
	case TagExtern:
		return false
	default:
		return false
	}
}

// AsInteger coerces numeric and boolean values to an int64, as needed
// by e.g. bitwise operators and index expressions.
func AsInteger(v Value) (int64, bool) {
	switch v.Tag {
	case TagInteger:
		return v.Integer, true
	case TagNumber:
		return int64(v.Number), true
	case TagBoolean:
		if v.Boolean {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsNumber coerces numeric and boolean values to a float64.
func AsNumber(v Value) (float64, bool) {
	switch v.Tag {
	case TagInteger:
		return float64(v.Integer), true
	case TagNumber:
		return v.Number, true
	case TagBoolean:
		if v.Boolean {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// AsString is the language's `to_string`: a String value is itself,
// everything else delegates to RawString (its printed form).
func AsString(v Value) string {
	if v.Tag == TagString {
		return v.Str
	}
	return RawString(v)
}

// ToString is an alias kept for call sites that read more naturally
// spelled as "to_string", matching the spec's naming.
func ToString(v Value) string {
	return AsString(v)
}

// RawString renders v the way the language's own printer would: quoted
// strings, bracketed lists, parenthesized maps, and "..." at any
// aggregate this call has already visited (cycle safety).
func RawString(v Value) string {
	return rawString(v, map[uint64]bool{})
}

func rawString(v Value, seen map[uint64]bool) string {
	if id, ok := v.aggregateID(); ok {
		if seen[id] {
			return "..."
		}
		// Copy so sibling branches of a shared aggregate aren't
		// falsely suppressed by a cousin's visit.
		child := make(map[uint64]bool, len(seen)+1)
		for k := range seen {
			child[k] = true
		}
		child[id] = true
		seen = child
	}

	switch v.Tag {
	case TagNull:
		return "null"
	case TagBoolean:
		if v.Boolean {
			return "true"
		}
		return "false"
	case TagInteger:
		return strconv.FormatInt(v.Integer, 10)
	case TagNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case TagString:
		return quoteString(v.Str)
	case TagList:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.List.items {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(rawString(item, seen))
		}
		b.WriteByte(']')
		return b.String()
	case TagMap:
		var b strings.Builder
		b.WriteByte('(')
		first := true
		for k, val := range v.Map.entries {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(quoteString(k))
			b.WriteString(": ")
			b.WriteString(rawString(val, seen))
		}
		b.WriteByte(')')
		return b.String()
	case TagExtern:
		return fmt.Sprintf("<extern %p>", v.Extern)
	default:
		return "<malformed value>"
	}
}

// quoteString escapes a string the way the language's printer does:
// control bytes as \xHH, quotes and backslashes escaped, everything
// else passed through byte-for-byte (input is required to be ASCII).
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			if c < 0x20 || c == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
