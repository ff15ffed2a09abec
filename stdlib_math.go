package shrimply

import (
	"math"
	"math/rand"
	"os"
	"strconv"
	"time"
)

func buildMathModule() *Module {
	mod := newModule("math", "<std::math>")
	mod.Globals["pi"] = Num(math.Pi)
	mod.Globals["e"] = Num(math.E)

	mod.Functions["pow"] = &HostFunction{Name: "pow", Fn: hostMathBinary(math.Pow)}
	mod.Functions["log"] = &HostFunction{Name: "log", Fn: hostMathLog}
	mod.Functions["sin"] = &HostFunction{Name: "sin", Fn: hostMathUnary(math.Sin)}
	mod.Functions["cos"] = &HostFunction{Name: "cos", Fn: hostMathUnary(math.Cos)}
	mod.Functions["tan"] = &HostFunction{Name: "tan", Fn: hostMathUnary(math.Tan)}
	mod.Functions["asin"] = &HostFunction{Name: "asin", Fn: hostMathUnary(math.Asin)}
	mod.Functions["acos"] = &HostFunction{Name: "acos", Fn: hostMathUnary(math.Acos)}
	mod.Functions["atan"] = &HostFunction{Name: "atan", Fn: hostMathUnary(math.Atan)}
	mod.Functions["signum"] = &HostFunction{Name: "signum", Fn: hostMathSignum}
	mod.Functions["abs"] = &HostFunction{Name: "abs", Fn: hostMathAbs}
	mod.Functions["floor"] = &HostFunction{Name: "floor", Fn: hostMathUnary(math.Floor)}
	mod.Functions["as_int"] = &HostFunction{Name: "as_int", Fn: hostMathAsInt}
	mod.Functions["rand"] = &HostFunction{Name: "rand", Fn: hostMathRand}
	mod.Functions["parse"] = &HostFunction{Name: "parse", Fn: hostMathParse}
	return mod
}

func hostMathUnary(f func(float64) float64) func(*Stackframe, []Value) (Value, error) {
	return func(frame *Stackframe, args []Value) (Value, error) {
		if len(args) != 1 {
			return Null, newRuntimeError(frame, "expects 1 numeric argument, got %d", len(args))
		}
		n, ok := AsNumber(args[0])
		if !ok {
			return Null, newRuntimeError(frame, "expects a numeric argument, got %s", args[0].Tag)
		}
		return Num(f(n)), nil
	}
}

func hostMathBinary(f func(float64, float64) float64) func(*Stackframe, []Value) (Value, error) {
	return func(frame *Stackframe, args []Value) (Value, error) {
		if len(args) != 2 {
			return Null, newRuntimeError(frame, "expects 2 numeric arguments, got %d", len(args))
		}
		a, ok1 := AsNumber(args[0])
		b, ok2 := AsNumber(args[1])
		if !ok1 || !ok2 {
			return Null, newRuntimeError(frame, "expects two numeric arguments, got %s and %s", args[0].Tag, args[1].Tag)
		}
		return Num(f(a, b)), nil
	}
}

// hostMathLog preserves the pinned reversed argument order: it
// computes log(base) / log(value), i.e. log base `value` of `base`.
func hostMathLog(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 2 {
		return Null, newRuntimeError(frame, "math::log expects (base, value)")
	}
	base, ok1 := AsNumber(args[0])
	value, ok2 := AsNumber(args[1])
	if !ok1 || !ok2 {
		return Null, newRuntimeError(frame, "math::log expects two numeric arguments")
	}
	return Num(math.Log(base) / math.Log(value)), nil
}

func hostMathSignum(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "math::signum expects 1 argument")
	}
	n, ok := AsNumber(args[0])
	if !ok {
		return Null, newRuntimeError(frame, "math::signum expects a numeric argument")
	}
	switch {
	case n > 0:
		return Num(1), nil
	case n < 0:
		return Num(-1), nil
	default:
		return Num(0), nil
	}
}

// hostMathAbs always returns a double, matching fabs in the original
// standard library: an integer argument is not given an integer fast
// path.
func hostMathAbs(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "math::abs expects 1 argument")
	}
	n, ok := AsNumber(args[0])
	if !ok {
		return Null, newRuntimeError(frame, "math::abs expects a numeric argument")
	}
	return Num(math.Abs(n)), nil
}

func hostMathAsInt(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "math::as_int expects 1 argument")
	}
	n, ok := AsNumber(args[0])
	if !ok {
		return Null, newRuntimeError(frame, "math::as_int expects a numeric argument")
	}
	return Int(int64(n)), nil
}

// hostMathRand assembles a [0, 1) double out of four 15/7-bit chunks
// drawn from a freshly seeded generator, matching the bit layout the
// original interpreter's Rand builtin used: 52 mantissa bits (15+15+
// 15+7) laid under an exponent field fixed to 1023 (giving a value in
// [1, 2)), then shifted down by 1.
func hostMathRand(frame *Stackframe, args []Value) (Value, error) {
	if len(args) > 1 {
		return Null, newRuntimeError(frame, "math::rand expects at most 1 argument")
	}
	var src rand.Source
	if len(args) == 0 || args[0].Tag == TagNull {
		src = rand.NewSource(time.Now().UnixNano() * int64(os.Getpid()))
	} else {
		seed, ok := AsInteger(args[0])
		if !ok {
			return Null, newRuntimeError(frame, "math::rand seed must be an integer or null")
		}
		src = rand.NewSource(seed)
	}
	r := rand.New(src)
	a := uint64(r.Intn(1 << 15))
	b := uint64(r.Intn(1 << 15))
	c := uint64(r.Intn(1 << 15))
	d := uint64(r.Intn(1 << 7))
	mantissa := a<<37 | b<<22 | c<<7 | d
	bits := uint64(0x3FF0000000000000) | mantissa
	return Num(math.Float64frombits(bits) - 1.0), nil
}

// hostMathParse always returns a double, matching the original's
// `stream >> double` parse: it never yields an Integer.
func hostMathParse(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "math::parse expects a string argument")
	}
	s := args[0].Str
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Null, newRuntimeError(frame, "math::parse: could not parse %q as a number", s)
	}
	return Num(n), nil
}
