package shrimply

// SyntaxFunction is a user-defined function: its body is a flattened
// statement list evaluated in a fresh boundary frame rooted at its own
// module, per the call mechanism.
type SyntaxFunction struct {
	Name          string
	ArgumentNames []string
	Pos           Position
	Body          []Statement
	Module        *Module
}

// newSyntaxFunction flattens a Function AST item's body: a Block body
// becomes its statement list directly, any other single statement is
// wrapped in a one-element list.
func newSyntaxFunction(fn *Function, mod *Module) *SyntaxFunction {
	var body []Statement
	if block, ok := fn.Body.(*Block); ok {
		body = block.Statements
	} else {
		body = []Statement{fn.Body}
	}
	return &SyntaxFunction{
		Name:          fn.Name,
		ArgumentNames: fn.Arguments,
		Pos:           fn.Pos,
		Body:          body,
		Module:        mod,
	}
}

// Call binds positional arguments (missing trailing ones default to
// Null, extras are ignored but counted into __ARGC), then executes the
// body in a fresh boundary frame. A Return signal yields its value; a
// body that runs to completion yields Null; an unhandled Break or
// Continue becomes a RuntimeError naming the callee frame.
func (fn *SyntaxFunction) Call(caller *Stackframe, args []Value) (result Value, err error) {
	frame := newCallFrame(caller, fn.Module, fn.Name, fn.Pos)
	for i, name := range fn.ArgumentNames {
		if i < len(args) {
			frame.variables[name] = args[i]
		} else {
			frame.variables[name] = Null
		}
	}
	frame.variables["__ARGC"] = Int(int64(len(args)))

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case returnSignal:
			result = sig.value
		case breakSignal:
			err = newRuntimeError(frame, "break outside of loop")
		case continueSignal:
			err = newRuntimeError(frame, "continue outside of loop")
		case *RuntimeError:
			err = sig
		default:
			panic(r)
		}
	}()

	execStatements(fn.Body, frame)
	return Null, nil
}

// HostFunction wraps a Go closure as a Callable, the shape every
// standard library entry uses: it receives the calling frame (for
// diagnostics) and the evaluated argument vector directly, with no
// frame of its own — host code is not user code and never gets a
// call-boundary frame.
type HostFunction struct {
	Name string
	Fn   func(frame *Stackframe, args []Value) (Value, error)
}

func (h *HostFunction) Call(caller *Stackframe, args []Value) (Value, error) {
	return h.Fn(caller, args)
}
