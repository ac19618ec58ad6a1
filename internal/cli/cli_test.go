package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/faultline/pkg/fault"
	"github.com/ib-77/faultline/pkg/resource"
	"github.com/ib-77/faultline/pkg/rop/kind"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// executeFault runs args and returns the fault that ended the command.
func executeFault(t *testing.T, args ...string) *fault.Signal {
	t.Helper()

	var err error
	sig := fault.Catch(func() { _, err = execute(t, args...) })
	require.NoError(t, err)
	require.NotNil(t, sig, "expected %v to end in a fault", args)
	return sig
}

func TestRootCommandHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "faultline exercises the two failure channels")
}

func TestOpen_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	out, err := execute(t, "open", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ready: "+path)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestOpen_UnhandledFailureIsAFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "x.txt")

	sig := executeFault(t, "open", path)
	assert.True(t, strings.HasPrefix(sig.Message(), "cannot open "+path+": create "+path), sig.Message())
	assert.Contains(t, sig.Message(), "no such file or directory")
}

func TestCat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	out, err := execute(t, "cat", path)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestCat_MissingFileIsAFault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.txt")

	var err error
	sig := fault.Catch(func() { _, err = execute(t, "cat", path) })

	require.NotNil(t, sig)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(sig.Message(), "cannot read "+path+": "), sig.Message())
}

func TestKV_PutGetDel(t *testing.T) {
	db := filepath.Join(t.TempDir(), "kv.db")

	out, err := execute(t, "kv", "put", db, "users", "ann", "admin")
	require.NoError(t, err)
	assert.Contains(t, out, "stored users/ann")

	out, err = execute(t, "kv", "get", db, "users", "ann")
	require.NoError(t, err)
	assert.Equal(t, "admin\n", out)

	_, err = execute(t, "kv", "del", db, "users", "ann")
	require.NoError(t, err)

	sig := executeFault(t, "kv", "get", db, "users", "ann")
	assert.Equal(t, "cannot get users/ann: kv get users/ann: key not found", sig.Message())
}

func TestKV_MissingKeyIsAFault(t *testing.T) {
	db := filepath.Join(t.TempDir(), "kv.db")
	_, err := execute(t, "kv", "put", db, "users", "ann", "admin")
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"kv", "get", db, "users", "bob"})

	sig := fault.Catch(func() { _ = cmd.Execute() })

	require.NotNil(t, sig)
	assert.Equal(t, fault.Unwind, sig.Mode())
	assert.Equal(t, "cannot get users/bob: kv get users/bob: key not found", sig.Message())
	assert.Empty(t, out.String())

	sig = executeFault(t, "kv", "del", db, "nobody", "bob")
	assert.Equal(t, "cannot delete nobody/bob: kv delete nobody/bob: bucket not found", sig.Message())
}

func TestKV_ReadOnlyFromConfig(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "kv.db")
	_, err := execute(t, "kv", "put", db, "b", "k", "v")
	require.NoError(t, err)

	cfg := filepath.Join(dir, "faultline.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("kv:\n  read_only: true\n"), 0o600))

	sig := executeFault(t, "--config", cfg, "kv", "put", db, "b", "k", "w")
	assert.Equal(t, "cannot put b/k: kv put b/k: database is in read-only mode", sig.Message())
}

func TestBadConfigIsAFault(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("kv: [unclosed"), 0o600))

	sig := executeFault(t, "--config", cfg, "kinds")
	assert.True(t, strings.HasPrefix(sig.Message(), "cannot load config: parse config "+cfg), sig.Message())
}

func TestKinds(t *testing.T) {
	out, err := execute(t, "kinds")
	require.NoError(t, err)
	for _, e := range kind.Registry() {
		assert.Contains(t, out, e.Code)
		assert.Contains(t, out, e.Name)
	}

	out, err = execute(t, "kinds", "80001")
	require.NoError(t, err)
	assert.Contains(t, out, "not_found")
	assert.NotContains(t, out, "permission_denied")

	_, err = execute(t, "kinds", "bogus")
	assert.Error(t, err)
}

func TestFault_RunsCleanupsInnermostFirst(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"fault", "boom", "--depth", "3"})

	sig := fault.Catch(func() { _ = cmd.Execute() })

	require.NotNil(t, sig)
	assert.Equal(t, "boom", sig.Message())
	assert.Equal(t, "cleanup 3\ncleanup 2\ncleanup 1\n", out.String())
}

func TestFault_RejectsBadDepth(t *testing.T) {
	_, err := execute(t, "fault", "boom", "--depth", "0")
	assert.Error(t, err)
}

func TestInvalidPanicMode(t *testing.T) {
	_, err := execute(t, "--panic-mode", "explode", "kinds")
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	files := resource.New(resource.OSFS{})

	def := loadConfig(files, "")
	require.True(t, def.IsSuccess())
	assert.Equal(t, defaultConfig(), def.Result())

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("panic_mode: abort\ndebug: true\nkv:\n  timeout: 250ms\n  read_only: true\n"), 0o600))

	r := loadConfig(files, good)
	require.True(t, r.IsSuccess(), "load: %v", r.Err())
	assert.Equal(t, Config{
		PanicMode: "abort",
		Debug:     true,
		KV:        KVConfig{Timeout: 250 * time.Millisecond, ReadOnly: true},
	}, r.Result())

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("kv: [unclosed"), 0o600))
	assert.Equal(t, kind.InvalidData, loadConfig(files, bad).Err().Kind())

	assert.Equal(t, kind.NotFound, loadConfig(files, filepath.Join(dir, "none.yaml")).Err().Kind())
}

func TestCommandErrors(t *testing.T) {
	assert.Equal(t, 2, commandErrors.Len())

	converted, err := commandErrors.Convert(kind.New(kind.TimedOut, "op", "p", nil))
	require.NoError(t, err)
	assert.Equal(t, kind.TimedOut, converted.Kind())
}
