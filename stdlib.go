package shrimply

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// buildStdlibModule assembles the host-provided std module: the
// top-level members plus the list/map/string/math nested modules,
// wired into every loaded module's import table under the name "std".
func buildStdlibModule() *Module {
	std := newModule("std", "<std>")
	std.Functions["print"] = &HostFunction{Name: "print", Fn: hostPrint(false)}
	std.Functions["println"] = &HostFunction{Name: "println", Fn: hostPrint(true)}
	std.Functions["input"] = &HostFunction{Name: "input", Fn: hostInput}
	std.Functions["typeof"] = &HostFunction{Name: "typeof", Fn: hostTypeof}
	std.Functions["crash"] = &HostFunction{Name: "crash", Fn: hostCrash}
	std.Functions["length"] = &HostFunction{Name: "length", Fn: hostLength}

	std.Imported["list"] = buildListModule()
	std.Imported["map"] = buildMapModule()
	std.Imported["string"] = buildStringModule()
	std.Imported["math"] = buildMathModule()
	return std
}

var stdin = bufio.NewReader(os.Stdin)

func hostPrint(newline bool) func(*Stackframe, []Value) (Value, error) {
	return func(frame *Stackframe, args []Value) (Value, error) {
		if len(args) != 1 {
			return Null, newRuntimeError(frame, "print expects 1 argument, got %d", len(args))
		}
		if newline {
			fmt.Println(AsString(args[0]))
		} else {
			fmt.Print(AsString(args[0]))
		}
		return Null, nil
	}
}

func hostInput(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagString {
		return Null, newRuntimeError(frame, "input expects a string kind argument")
	}
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return Null, newRuntimeError(frame, "input: %v", err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	switch args[0].Str {
	case "string":
		return Str(line), nil
	case "integer":
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return Null, newRuntimeError(frame, "input: could not parse %q as integer", line)
		}
		return Int(n), nil
	case "number":
		n, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return Null, newRuntimeError(frame, "input: could not parse %q as number", line)
		}
		return Num(n), nil
	case "boolean":
		switch line {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		default:
			return Null, newRuntimeError(frame, "input: could not parse %q as boolean", line)
		}
	default:
		return Null, newRuntimeError(frame, "input: unrecognized kind %q", args[0].Str)
	}
}

func hostTypeof(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "typeof expects 1 argument, got %d", len(args))
	}
	return Str(args[0].Tag.String()), nil
}

func hostCrash(frame *Stackframe, args []Value) (Value, error) {
	msg := ""
	if len(args) == 1 {
		msg = AsString(args[0])
	}
	return Null, newRuntimeError(frame, "%s", msg)
}

func hostLength(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 {
		return Null, newRuntimeError(frame, "length expects 1 argument, got %d", len(args))
	}
	switch args[0].Tag {
	case TagList:
		return Int(int64(len(args[0].List.items))), nil
	case TagString:
		return Int(int64(len(args[0].Str))), nil
	case TagMap:
		return Int(int64(len(args[0].Map.entries))), nil
	default:
		return Null, newRuntimeError(frame, "length is not defined for %s", args[0].Tag)
	}
}
