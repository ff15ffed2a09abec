package shrimply

func buildMapModule() *Module {
	mod := newModule("map", "<std::map>")
	mod.Functions["remove"] = &HostFunction{Name: "remove", Fn: hostMapRemove}
	mod.Functions["keys"] = &HostFunction{Name: "keys", Fn: hostMapKeys}
	mod.Functions["values"] = &HostFunction{Name: "values", Fn: hostMapValues}
	mod.Functions["contains"] = &HostFunction{Name: "contains", Fn: hostMapContains}
	return mod
}

func hostMapRemove(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 2 || args[0].Tag != TagMap {
		return Null, newRuntimeError(frame, "map::remove expects (map, key)")
	}
	key := AsString(args[1])
	m := args[0].Map
	v, ok := m.entries[key]
	if !ok {
		return Null, newRuntimeError(frame, "key does not exist in map: %s", key)
	}
	delete(m.entries, key)
	return v, nil
}

func hostMapKeys(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagMap {
		return Null, newRuntimeError(frame, "map::keys expects (map)")
	}
	keys := make([]Value, 0, len(args[0].Map.entries))
	for k := range args[0].Map.entries {
		keys = append(keys, Str(k))
	}
	return NewList(keys), nil
}

func hostMapValues(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 1 || args[0].Tag != TagMap {
		return Null, newRuntimeError(frame, "map::values expects (map)")
	}
	values := make([]Value, 0, len(args[0].Map.entries))
	for _, v := range args[0].Map.entries {
		values = append(values, v)
	}
	return NewList(values), nil
}

func hostMapContains(frame *Stackframe, args []Value) (Value, error) {
	if len(args) != 2 || args[0].Tag != TagMap {
		return Null, newRuntimeError(frame, "map::contains expects (map, key)")
	}
	_, ok := args[0].Map.entries[AsString(args[1])]
	return Bool(ok), nil
}
