package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/slf4g/internal/manifest"
	"github.com/Gunvolt24/slf4g/pkg/slf4g"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	t.Cleanup(func() { slf4g.SetDefault(nil) })
	return stdout.String(), stderr.String(), err
}

func TestBindings(t *testing.T) {
	out, _, err := run(t, "bindings")
	require.NoError(t, err)
	require.Equal(t, "console\nlogrus\nnop\nslog\nzap\n", out)

	out, _, err = run(t, "bindings", "--json")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	require.Equal(t, slf4g.Bindings(), names)
}

func TestResolve_EnvBinding(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, "nop")
	t.Setenv("SLF4G_MANIFEST_DIR", t.TempDir())

	out, stderr, err := run(t, "resolve")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Contains(t, out, "binding:   nop (SLF4G_BINDING)")
	require.Contains(t, out, "active:    nop")
	require.NotContains(t, out, "error:")
}

func TestResolve_Fallback(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, "")
	t.Setenv("SLF4G_MANIFEST_DIR", t.TempDir())
	t.Setenv("SLF4G_MANIFEST_FILES", "slf4g-cmd-test-manifest.yaml")

	out, stderr, err := run(t, "resolve", "--json")
	require.NoError(t, err)
	require.Equal(t, 3, strings.Count(stderr, "SLF4G: "))

	var d struct {
		Binding string `json:"binding"`
		Active  string `json:"active"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	require.Empty(t, d.Binding)
	require.Equal(t, "nop", d.Active)
	require.Contains(t, d.Error, "failed to determine binding")
}

func TestDemo_Nop(t *testing.T) {
	t.Setenv(slf4g.BindingEnv, "nop")

	out, _, err := run(t, "demo", "--json")
	require.NoError(t, err)
	require.JSONEq(t, `{"emitted": 0}`, out)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("SLF4G_LOGGER_IS_PROD", "not-a-bool")

	_, _, err := run(t, "resolve")
	require.ErrorContains(t, err, "load config")
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := run(t, "explode")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"ok", write("ok.yaml", "slf4g: zap\n"), nil},
		{"object form", write("obj.json", `{"slf4g": {"binding": "console"}}`), nil},
		{"plugin", write("plugin.yaml", "slf4g: ./backend.so\n"), nil},
		{"no field", write("nofield.yaml", "name: app\n"), slf4g.ErrBindingNotFound},
		{"unknown binding", write("unknown.yaml", "slf4g: winston\n"), slf4g.ErrUnknownBinding},
		{"broken", write("broken.json", "{"), manifest.ErrInvalid},
		{"missing file", filepath.Join(dir, "absent.yaml"), manifest.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, "check", tt.path)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.Contains(t, stderr, "manifest ok")
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
