package shrimply

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Callable is anything a Call expression can invoke: a user-defined
// SyntaxFunction or a host-provided builtin.
type Callable interface {
	Call(caller *Stackframe, args []Value) (Value, error)
}

// Module is one loaded source file: its own globals and functions,
// plus the modules it imports by name.
type Module struct {
	Name      string
	Path      string
	Imported  map[string]*Module
	Globals   map[string]Value
	Functions map[string]Callable
}

func newModule(name, path string) *Module {
	return &Module{
		Name:      name,
		Path:      path,
		Imported:  map[string]*Module{},
		Globals:   map[string]Value{},
		Functions: map[string]Callable{},
	}
}

// Loader resolves use paths on disk, parses each file, detects import
// cycles, and builds every Module reachable from an entry file.
type Loader struct {
	registry    map[string]*Module
	inFlight    map[string]bool
	searchPaths []string // beyond the always-searched importer directory
	stdlib      *Module
}

// NewLoader builds a Loader whose search path list is env vars and
// manifest search paths, in the precedence SPEC_FULL's AMBIENT STACK
// section describes: SHRIMPLY_MOD_PATHS, then any shrimply.yaml
// searchPaths discovered above entryDir.
func NewLoader(entryDir string) (*Loader, error) {
	l := &Loader{
		registry: map[string]*Module{},
		inFlight: map[string]bool{},
		stdlib:   buildStdlibModule(),
	}
	if raw := os.Getenv("SHRIMPLY_MOD_PATHS"); raw != "" {
		for _, p := range strings.Split(raw, ";") {
			if p = strings.TrimSpace(p); p != "" {
				l.searchPaths = append(l.searchPaths, p)
			}
		}
	}
	manifest, err := findManifest(entryDir)
	if err != nil {
		return nil, err
	}
	if manifest != nil {
		l.searchPaths = append(l.searchPaths, manifest.SearchPaths...)
		for _, gm := range manifest.Modules {
			resolved, err := resolveGitSearchRoot(gm.Source, gm.Ref)
			if err != nil {
				return nil, errors.Wrapf(err, "resolving manifest module %q", gm.Name)
			}
			l.searchPaths = append(l.searchPaths, resolved)
		}
	}
	return l, nil
}

// Load parses and builds every module reachable from entryPath,
// returning the entry module.
func (l *Loader) Load(entryPath string) (*Module, error) {
	canon, err := filepath.Abs(entryPath)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving path %q", entryPath)
	}
	return l.loadFile(canon)
}

func (l *Loader) loadFile(canon string) (*Module, error) {
	if mod, ok := l.registry[canon]; ok {
		return mod, nil
	}
	if l.inFlight[canon] {
		return nil, &RuntimeError{Message: "dependency cycle detected: " + canon}
	}
	l.inFlight[canon] = true
	defer delete(l.inFlight, canon)

	src, err := os.ReadFile(canon)
	if err != nil {
		return nil, wrapModuleError(canon, err)
	}
	root, err := ParseSource(canon, src)
	if err != nil {
		return nil, wrapModuleError(canon, err)
	}

	name := strings.TrimSuffix(filepath.Base(canon), filepath.Ext(canon))
	mod := newModule(name, canon)
	mod.Imported["std"] = l.stdlib
	importerDir := filepath.Dir(canon)

	// Imports pass.
	for _, item := range root.Items {
		use, ok := item.(*Use)
		if !ok {
			continue
		}
		imported, err := l.resolveUse(use.Module, importerDir)
		if err != nil {
			return nil, wrapModuleError(canon, err)
		}
		mod.Imported[use.Module.Members[len(use.Module.Members)-1]] = imported
	}

	// Functions pass.
	for _, item := range root.Items {
		fn, ok := item.(*Function)
		if !ok {
			continue
		}
		mod.Functions[fn.Name] = newSyntaxFunction(fn, mod)
	}

	// Globals pass, in source order; earlier globals and any function
	// or import may be referenced by a later declaration's initializer.
	frame := newRootFrame(mod)
	for _, item := range root.Items {
		decl, ok := item.(*Declaration)
		if !ok {
			continue
		}
		v, err := evalGlobal(decl, frame)
		if err != nil {
			return nil, wrapModuleError(canon, err)
		}
		mod.Globals[decl.Name] = v
	}

	l.registry[canon] = mod
	return mod, nil
}

// evalGlobal runs one global initializer, converting the panic-based
// RuntimeError propagation that Result/execStatement use internally
// back into a normal Go error at this loader boundary.
func evalGlobal(decl *Declaration, frame *Stackframe) (v Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RuntimeError)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	frame.sourcePos = decl.Pos
	v = Result(decl.Value, frame)
	return v, nil
}

func (l *Loader) resolveUse(path *Path, importerDir string) (*Module, error) {
	roots := append([]string{importerDir}, l.searchPaths...)
	for _, root := range roots {
		if strings.HasPrefix(root, "git+") {
			source, ref := splitGitRef(root)
			resolvedRoot, err := resolveGitSearchRoot(source, ref)
			if err != nil {
				return nil, errors.Wrapf(err, "could not resolve module path %q", strings.Join(path.Members, "::"))
			}
			root = resolvedRoot
		}
		if resolved, ok := resolveInRoot(root, path.Members); ok {
			return l.loadFile(resolved)
		}
	}
	return nil, errors.Errorf("could not resolve module path %q", strings.Join(path.Members, "::"))
}

// splitGitRef splits a "git+https://host/repo#ref" search-path entry
// into its URL and optional ref, the ref being empty when unpinned.
func splitGitRef(entry string) (source, ref string) {
	if i := strings.LastIndex(entry, "#"); i >= 0 {
		return entry[:i], entry[i+1:]
	}
	return entry, ""
}

// resolveInRoot walks root by stem-matching each path member against
// directory entries: every member but the last must resolve to a
// subdirectory, the last must resolve to a file (its on-disk name may
// or may not carry the .spl extension).
func resolveInRoot(root string, members []string) (string, bool) {
	dir := root
	for i, member := range members {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return "", false
		}
		last := i == len(members)-1
		found := ""
		for _, e := range entries {
			stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			if stem != member {
				continue
			}
			if last && !e.IsDir() {
				found = e.Name()
				break
			}
			if !last && e.IsDir() {
				found = e.Name()
				break
			}
		}
		if found == "" {
			return "", false
		}
		dir = filepath.Join(dir, found)
	}
	return dir, true
}
