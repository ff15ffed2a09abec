package shrimply

import "github.com/pkg/errors"

// RunMain invokes mod's main function with args converted to String
// Values, the way the external command-line entry point specified in
// spec.md §6 does. Missing a main function is a caller error, not a
// language-level RuntimeError, since it happens before any evaluation.
func RunMain(mod *Module, args []string) error {
	fn, ok := mod.Functions["main"]
	if !ok {
		return errors.Errorf("module %q defines no main function", mod.Name)
	}
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = Str(a)
	}
	_, err := fn.Call(newRootFrame(mod), values)
	return err
}

// FetchGitModule resolves a plain (unprefixed) git URL the way the
// shrimply get subcommand does: it exists as a thin wrapper so the CLI
// never has to construct a "git+" search-path entry by hand.
func FetchGitModule(url, ref string) (string, error) {
	return resolveGitSearchRoot("git+"+url, ref)
}
