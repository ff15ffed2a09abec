package shrimply

import "strings"

// Result evaluates an expression to a Value. It panics with a
// *RuntimeError on failure; SyntaxFunction.Call and the loader's
// evalGlobal recover it into a normal error.
func Result(expr Expression, frame *Stackframe) Value {
	switch e := expr.(type) {
	case *Literal:
		frame.sourcePos = e.Pos
		return e.Value

	case *Path:
		frame.sourcePos = e.Pos
		v, ok := frame.resolvePath(e.Members)
		if !ok {
			panic(newRuntimeError(frame, "could not find variable %q", strings.Join(e.Members, "::")))
		}
		return v

	case *UnaryOp:
		frame.sourcePos = e.Pos
		return Bool(!AsBoolean(Result(e.Value, frame)))

	case *BinaryOp:
		return evalBinaryOp(e, frame)

	case *Ternary:
		frame.sourcePos = e.Pos
		if AsBoolean(Result(e.Predicate, frame)) {
			return Result(e.LHS, frame)
		}
		return Result(e.RHS, frame)

	case *Call:
		return evalCall(e, frame)

	case *ListExpr:
		frame.sourcePos = e.Pos
		items := make([]Value, len(e.Members))
		for i, m := range e.Members {
			items[i] = Result(m, frame)
		}
		return NewList(items)

	case *MapExpr:
		frame.sourcePos = e.Pos
		entries := make(map[string]Value, len(e.Pairs))
		for _, pair := range e.Pairs {
			entries[pair.Key] = Result(pair.Value, frame)
		}
		return NewMap(entries)

	default:
		panic(newRuntimeError(frame, "internal error: unhandled expression type %T", expr))
	}
}

func evalCall(call *Call, frame *Stackframe) Value {
	frame.sourcePos = call.Pos
	members := call.FunctionPath.Members
	fn, ok := frame.resolveFunction(members)
	if !ok {
		panic(newRuntimeError(frame, "could not find function %q", strings.Join(members, "::")))
	}
	args := make([]Value, len(call.Arguments))
	for i, a := range call.Arguments {
		args[i] = Result(a, frame)
	}
	v, err := fn.Call(frame, args)
	if err != nil {
		panic(err)
	}
	return v
}

// Pointer evaluates expr to a settable place, used as the left-hand
// side of a BinaryOp "=" and by the ternary and index forms that can
// appear there. An atom without a sensible place panics with
// "expression does not support assignment".
func Pointer(expr Expression, frame *Stackframe) place {
	switch e := expr.(type) {
	case *Path:
		frame.sourcePos = e.Pos
		if len(e.Members) == 1 {
			return framePlace{frame: frame, name: e.Members[0]}
		}
		mod := frame.module
		for _, m := range e.Members[:len(e.Members)-1] {
			next, ok := mod.Imported[m]
			if !ok {
				panic(newRuntimeError(frame, "could not find variable %q", strings.Join(e.Members, "::")))
			}
			mod = next
		}
		return globalPlace{module: mod, name: e.Members[len(e.Members)-1]}

	case *BinaryOp:
		if e.Op != "." {
			panic(newRuntimeError(frame, "expression does not support assignment"))
		}
		frame.sourcePos = e.Pos
		container := Result(e.LHS, frame)
		switch container.Tag {
		case TagList:
			idx, ok := AsInteger(Result(e.RHS, frame))
			if !ok || idx < 0 || idx >= int64(len(container.List.items)) {
				panic(newRuntimeError(frame, "list index out of range"))
			}
			return listElemPlace{list: container.List, idx: int(idx)}
		case TagMap:
			key := AsString(Result(e.RHS, frame))
			return mapKeyPlace{mp: container.Map, key: key}
		default:
			panic(newRuntimeError(frame, "cannot assign to an index of %s", container.Tag))
		}

	case *Ternary:
		frame.sourcePos = e.Pos
		if AsBoolean(Result(e.Predicate, frame)) {
			return Pointer(e.LHS, frame)
		}
		return Pointer(e.RHS, frame)

	default:
		panic(newRuntimeError(frame, "expression does not support assignment"))
	}
}
