package shrimply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callHost(t *testing.T, fn Callable, args ...Value) Value {
	t.Helper()
	frame := newRootFrame(newModule("test", "<test>"))
	v, err := fn.Call(frame, args)
	require.NoError(t, err)
	return v
}

func TestHostTypeofAndLength(t *testing.T) {
	std := buildStdlibModule()
	assert.Equal(t, Str("integer"), callHost(t, std.Functions["typeof"], Int(1)))
	assert.Equal(t, Str("string"), callHost(t, std.Functions["typeof"], Str("x")))
	assert.Equal(t, Int(3), callHost(t, std.Functions["length"], NewList([]Value{Int(1), Int(2), Int(3)})))
	assert.Equal(t, Int(5), callHost(t, std.Functions["length"], Str("hello")))
}

func TestHostCrashProducesRuntimeError(t *testing.T) {
	std := buildStdlibModule()
	frame := newRootFrame(newModule("test", "<test>"))
	_, err := std.Functions["crash"].Call(frame, []Value{Str("boom")})
	require.Error(t, err)
	re, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, "boom", re.Message)
}

func TestListPushAndPop(t *testing.T) {
	list := buildListModule()
	l := NewList([]Value{Int(1)})
	pushed := callHost(t, list.Functions["push"], l, Int(2))
	assert.Equal(t, []Value{Int(1), Int(2)}, pushed.List.items)

	popped := callHost(t, list.Functions["pop"], l)
	assert.Equal(t, Int(2), popped)
	assert.Equal(t, []Value{Int(1)}, l.List.items)
}

func TestListPopOnEmptyErrors(t *testing.T) {
	list := buildListModule()
	frame := newRootFrame(newModule("test", "<test>"))
	_, err := list.Functions["pop"].Call(frame, []Value{NewList(nil)})
	assert.Error(t, err)
}

func TestMapKeysValuesRemoveContains(t *testing.T) {
	m := buildMapModule()
	mv := NewMap(map[string]Value{"a": Int(1)})

	assert.True(t, callHost(t, m.Functions["contains"], mv, Str("a")).Boolean)
	assert.False(t, callHost(t, m.Functions["contains"], mv, Str("z")).Boolean)

	keys := callHost(t, m.Functions["keys"], mv)
	assert.Equal(t, []Value{Str("a")}, keys.List.items)

	values := callHost(t, m.Functions["values"], mv)
	assert.Equal(t, []Value{Int(1)}, values.List.items)

	removed := callHost(t, m.Functions["remove"], mv, Str("a"))
	assert.Equal(t, Int(1), removed)
	assert.False(t, callHost(t, m.Functions["contains"], mv, Str("a")).Boolean)
}

func TestStringSubstringLengthSemantics(t *testing.T) {
	str := buildStringModule()
	assert.Equal(t, Str("ell"), callHost(t, str.Functions["substring"], Str("hello"), Int(1), Int(3)))
	// end is a length in [0, len(s)], not an end index; start offset
	// still clamps the actual slice taken to what remains of s.
	assert.Equal(t, Str("lo"), callHost(t, str.Functions["substring"], Str("hello"), Int(3), Int(4)))
}

func TestStringSubstringErrorsOnStartGreaterThanEnd(t *testing.T) {
	str := buildStringModule()
	frame := newRootFrame(newModule("test", "<test>"))
	_, err := str.Functions["substring"].Call(frame, []Value{Str("hello"), Int(3), Int(1)})
	assert.Error(t, err)
}

func TestStringSubstringErrorsWhenEndExceedsLength(t *testing.T) {
	str := buildStringModule()
	frame := newRootFrame(newModule("test", "<test>"))
	_, err := str.Functions["substring"].Call(frame, []Value{Str("hi"), Int(0), Int(10)})
	assert.Error(t, err)
}

func TestStringFindOrdinaryMatch(t *testing.T) {
	str := buildStringModule()
	assert.Equal(t, Int(6), callHost(t, str.Functions["find"], Str("hello world"), Str("world")))
	assert.Equal(t, Int(-1), callHost(t, str.Functions["find"], Str("hello"), Str("xyz")))
}

func TestStringFindWithStartOffset(t *testing.T) {
	str := buildStringModule()
	assert.Equal(t, Int(2), callHost(t, str.Functions["find"], Str("hello"), Str("ll"), Int(2)))
}

func TestStringFindEqualLengthCollapsesToFlag(t *testing.T) {
	str := buildStringModule()
	assert.Equal(t, Int(1), callHost(t, str.Functions["find"], Str("abc"), Str("abc")))
	assert.Equal(t, Int(0), callHost(t, str.Functions["find"], Str("abc"), Str("xyz")))
}

func TestStringUpperLowerByteChar(t *testing.T) {
	str := buildStringModule()
	assert.Equal(t, Str("HI"), callHost(t, str.Functions["upper"], Str("hi")))
	assert.Equal(t, Str("hi"), callHost(t, str.Functions["lower"], Str("HI")))
	assert.Equal(t, Int(int64('e')), callHost(t, str.Functions["byte"], Str("hello"), Int(1)))
	assert.Equal(t, Str("A"), callHost(t, str.Functions["char"], Int(int64('A'))))
}

func TestMathLogIsReversedArgumentOrder(t *testing.T) {
	m := buildMathModule()
	// log(base, value) computes log(base)/log(value), i.e. log base
	// `value` of `base`: log(8, 2) is log_2(8) = 3, not log_8(2).
	got := callHost(t, m.Functions["log"], Num(8), Num(2))
	assert.InDelta(t, 3.0, got.Number, 1e-9)
}

func TestMathAbsAlwaysReturnsNumber(t *testing.T) {
	m := buildMathModule()
	assert.Equal(t, Num(5), callHost(t, m.Functions["abs"], Int(-5)))
	assert.Equal(t, Num(5.5), callHost(t, m.Functions["abs"], Num(-5.5)))
}

func TestMathSignum(t *testing.T) {
	m := buildMathModule()
	assert.Equal(t, Num(1), callHost(t, m.Functions["signum"], Int(9)))
	assert.Equal(t, Num(-1), callHost(t, m.Functions["signum"], Int(-9)))
	assert.Equal(t, Num(0), callHost(t, m.Functions["signum"], Int(0)))
}

func TestMathRandIsWithinUnitRangeAndDeterministicForSameSeed(t *testing.T) {
	m := buildMathModule()
	a := callHost(t, m.Functions["rand"], Int(42))
	b := callHost(t, m.Functions["rand"], Int(42))
	assert.Equal(t, a, b)
	assert.GreaterOrEqual(t, a.Number, 0.0)
	assert.Less(t, a.Number, 1.0)
}

func TestMathParseAlwaysReturnsNumber(t *testing.T) {
	m := buildMathModule()
	assert.Equal(t, Num(42), callHost(t, m.Functions["parse"], Str("42")))
	assert.Equal(t, Num(4.5), callHost(t, m.Functions["parse"], Str("4.5")))
}
