package shrimply

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeModule writes a single-file module into a fresh temp directory
// and returns its path, the way a real project entry file would sit on
// disk.
func writeModule(t *testing.T, filename, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// loadAndCallMain loads path and invokes its main function with args,
// returning the runtime error (if any) from the call.
func loadAndCallMain(t *testing.T, path string, args ...string) error {
	t.Helper()
	loader, err := NewLoader(filepath.Dir(path))
	require.NoError(t, err)
	mod, err := loader.Load(path)
	require.NoError(t, err)
	return RunMain(mod, args)
}

func TestLoaderEvaluatesGlobalsInSourceOrder(t *testing.T) {
	path := writeModule(t, "main.spl", `
:= a 1;
:= b + a 1;
fn main(args) {
	return b;
}
`)
	loader, err := NewLoader(filepath.Dir(path))
	require.NoError(t, err)
	mod, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, Int(2), mod.Globals["b"])
}

func TestLoaderDetectsImportCycle(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.spl"), []byte("use b;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.spl"), []byte("use a;\n"), 0o644))

	loader, err := NewLoader(dir)
	require.NoError(t, err)
	_, err = loader.Load(filepath.Join(dir, "a.spl"))
	assert.Error(t, err)
}

func TestLoaderResolvesUseByStemAcrossExtension(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "helpers")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "math.spl"), []byte(":= two 2;\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.spl"), []byte(`
use helpers::math;
fn main(args) {
	return math::two;
}
`), 0o644))

	loader, err := NewLoader(dir)
	require.NoError(t, err)
	mod, err := loader.Load(filepath.Join(dir, "main.spl"))
	require.NoError(t, err)
	fn := mod.Functions["main"]
	v, err := fn.Call(newRootFrame(mod), nil)
	require.NoError(t, err)
	assert.Equal(t, Int(2), v)
}

func TestRunMainMissing(t *testing.T) {
	path := writeModule(t, "main.spl", ":= x 1;\n")
	err := loadAndCallMain(t, path)
	assert.Error(t, err)
}
