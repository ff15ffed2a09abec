package shrimply

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// evalExprInFreshFrame parses a bare expression and evaluates it in a
// throwaway module/frame pair, for tests that don't need imports.
func evalExprInFreshFrame(t *testing.T, src string) Value {
	t.Helper()
	root, err := ParseSource("test.spl", []byte(":= x "+src+";"))
	require.NoError(t, err)
	decl := root.Items[0].(*Declaration)
	mod := newModule("test", "<test>")
	mod.Imported["std"] = buildStdlibModule()
	frame := newRootFrame(mod)
	return Result(decl.Value, frame)
}

func TestEvalArithmetic(t *testing.T) {
	assert.Equal(t, Int(3), evalExprInFreshFrame(t, "+ 1 2"))
	assert.Equal(t, Num(1.5), evalExprInFreshFrame(t, "/ 3.0 2.0"))
	assert.Equal(t, Int(1), evalExprInFreshFrame(t, "% 7 2"))
}

func TestEvalStringConcatenation(t *testing.T) {
	assert.Equal(t, Str("ab"), evalExprInFreshFrame(t, `+ "a" "b"`))
	assert.Equal(t, Str("a1"), evalExprInFreshFrame(t, `+ "a" 1`))
}

func TestEvalStringRepetitionClampsNegativeToEmpty(t *testing.T) {
	assert.Equal(t, Str(""), evalExprInFreshFrame(t, `* "ab" -1`))
	assert.Equal(t, Str("abab"), evalExprInFreshFrame(t, `* "ab" 2`))
}

func TestEvalShortCircuitAndOr(t *testing.T) {
	assert.Equal(t, Bool(false), evalExprInFreshFrame(t, "&& false $crash_should_not_run()"))
	assert.Equal(t, Bool(true), evalExprInFreshFrame(t, "|| true $crash_should_not_run()"))
}

func TestEvalTernary(t *testing.T) {
	assert.Equal(t, Int(1), evalExprInFreshFrame(t, "? true 1 2"))
	assert.Equal(t, Int(2), evalExprInFreshFrame(t, "? false 1 2"))
}

func TestEvalIndexIntoListAndMap(t *testing.T) {
	assert.Equal(t, Int(2), evalExprInFreshFrame(t, ". [1, 2, 3] 1"))
	assert.Equal(t, Int(1), evalExprInFreshFrame(t, `. ("a" = 1) "a"`))
}

func TestEvalDivisionByZeroRaises(t *testing.T) {
	assert.Panics(t, func() { evalExprInFreshFrame(t, "/ 1 0") })
}

func runProgram(t *testing.T, src string) (*Module, error) {
	t.Helper()
	root, err := ParseSource("test.spl", []byte(src))
	require.NoError(t, err)
	mod := newModule("test", "<test>")
	mod.Imported["std"] = buildStdlibModule()

	for _, item := range root.Items {
		if fn, ok := item.(*Function); ok {
			mod.Functions[fn.Name] = newSyntaxFunction(fn, mod)
		}
	}
	frame := newRootFrame(mod)
	for _, item := range root.Items {
		decl, ok := item.(*Declaration)
		if !ok {
			continue
		}
		v, err := evalGlobal(decl, frame)
		if err != nil {
			return nil, err
		}
		mod.Globals[decl.Name] = v
	}
	return mod, nil
}

func TestFunctionCallWithReturn(t *testing.T) {
	mod, err := runProgram(t, `
fn add_one(x) {
	return + x 1;
}
`)
	require.NoError(t, err)
	v, err := mod.Functions["add_one"].Call(newRootFrame(mod), []Value{Int(41)})
	require.NoError(t, err)
	assert.Equal(t, Int(42), v)
}

func TestFunctionMissingTrailingArgsDefaultToNull(t *testing.T) {
	mod, err := runProgram(t, `
fn first(a, b) {
	return ? == b null a -1;
}
`)
	require.NoError(t, err)
	v, err := mod.Functions["first"].Call(newRootFrame(mod), []Value{Int(1)})
	require.NoError(t, err)
	assert.Equal(t, Int(1), v)
}

func TestLoopBreakAndContinue(t *testing.T) {
	// Assignment always writes into the frame that runs it, and every
	// loop iteration gets a fresh child frame, so a counter that needs
	// to survive across iterations has to live in a shared aggregate
	// rather than a plain local.
	mod, err := runProgram(t, `
fn count_evens(n) {
	:= state [0, 0];
	loop {
		if >= . state 0 n {
			break;
		}
		:= i2 . state 0;
		= . state 0 + . state 0 1;
		if != 0 % i2 2 {
			continue;
		}
		= . state 1 + . state 1 1;
	}
	return . state 1;
}
`)
	require.NoError(t, err)
	v, err := mod.Functions["count_evens"].Call(newRootFrame(mod), []Value{Int(6)})
	require.NoError(t, err)
	assert.Equal(t, Int(3), v)
}

func TestTryRecoverCatchesCrash(t *testing.T) {
	// try/recover's happy and sad paths each run in their own child
	// frame, and assignment always writes locally (see
	// TestLoopBreakAndContinue), so the result has to be boxed in a
	// shared list for the outer return to observe the recovered value.
	mod, err := runProgram(t, `
fn safe_divide(a, b) {
	:= result [0];
	try {
		= . result 0 / a b;
	} recover e {
		= . result 0 -1;
	}
	return . result 0;
}
`)
	require.NoError(t, err)
	v, err := mod.Functions["safe_divide"].Call(newRootFrame(mod), []Value{Int(10), Int(0)})
	require.NoError(t, err)
	assert.Equal(t, Int(-1), v)
}

func TestAssignmentIntoListElement(t *testing.T) {
	mod, err := runProgram(t, `
fn set_first(l, v) {
	= . l 0 v;
	return l;
}
`)
	require.NoError(t, err)
	list := NewList([]Value{Int(1), Int(2)})
	v, err := mod.Functions["set_first"].Call(newRootFrame(mod), []Value{list, Int(99)})
	require.NoError(t, err)
	assert.Equal(t, Int(99), v.List.items[0])
}
