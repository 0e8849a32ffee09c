package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/selectbox"
	"github.com/atomicstack/tmux-popup-select/internal/tmux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuiltin(t *testing.T) {
	set := Builtin()
	assert.Equal(t, []string{"First", "Second", "Third", "Fourth", "Fifth"}, selectbox.Labels(set.Options))
	assert.Same(t, set.Options[0], set.Single)
	require.Len(t, set.Multiple, 1)
	assert.Same(t, set.Options[0], set.Multiple[0])
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
single = 2
multiple = ["beta", 2, "beta"]

[[options]]
label = "Alpha"
value = "alpha"

[[options]]
label = "Two"
value = 2

[[options]]
label = "beta"
`)
	set, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, NameFile, set.Name)
	assert.Equal(t, []string{"Alpha", "Two", "beta"}, selectbox.Labels(set.Options))
	assert.Same(t, set.Options[1], set.Single)
	assert.Equal(t, []string{"beta", "Two"}, selectbox.Labels(set.Multiple))
	assert.Equal(t, "beta", set.Options[2].Key())
}

func TestLoadFileWithoutInitialValues(t *testing.T) {
	path := writeFile(t, `
[[options]]
label = "Only"
`)
	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.Nil(t, set.Single)
	assert.NotNil(t, set.Multiple)
	assert.Empty(t, set.Multiple)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"no options", `single = 1`, "no options defined"},
		{"empty label", "[[options]]\nlabel = \" \"\nvalue = 1\n", "option 1: empty label"},
		{"duplicate", "[[options]]\nlabel = \"a\"\nvalue = 1\n[[options]]\nlabel = \"b\"\nvalue = 1\n", "already used by option 1"},
		{"unknown single", "single = 9\n[[options]]\nlabel = \"a\"\nvalue = 1\n", `single: unknown value "9"`},
		{"unknown multiple", "multiple = [\"x\"]\n[[options]]\nlabel = \"a\"\n", `multiple: unknown value "x"`},
		{"unknown field", "colour = \"red\"\n[[options]]\nlabel = \"a\"\n", "colour"},
		{"syntax", "[[options]\n", "options file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func stubSessions(t *testing.T, fn func(string) (tmux.SessionSnapshot, error)) {
	t.Helper()
	prev := fetchSessions
	fetchSessions = fn
	t.Cleanup(func() { fetchSessions = prev })
}

func TestTmuxSessions(t *testing.T) {
	var gotSocket string
	stubSessions(t, func(socket string) (tmux.SessionSnapshot, error) {
		gotSocket = socket
		return tmux.SessionSnapshot{
			Current: "dev",
			Sessions: []tmux.Session{
				{Name: "dev", Label: "dev: 2 windows (attached)", Current: true},
				{Name: "ops", Label: "ops: 1 window"},
			},
		}, nil
	})

	set, err := TmuxSessions("/tmp/sock")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sock", gotSocket)
	assert.Equal(t, NameTmuxSessions, set.Name)
	assert.Equal(t, []string{"dev: 2 windows (attached)", "ops: 1 window"}, selectbox.Labels(set.Options))
	assert.Equal(t, "ops", set.Options[1].Key())
	assert.Same(t, set.Options[0], set.Single)
	assert.Equal(t, []*selectbox.Option{set.Options[0]}, set.Multiple)
}

func TestTmuxSessionsError(t *testing.T) {
	stubSessions(t, func(string) (tmux.SessionSnapshot, error) {
		return tmux.SessionSnapshot{}, errors.New("no server running")
	})
	_, err := TmuxSessions("/tmp/sock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list tmux sessions")
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"builtin", " BUILTIN ", "", "file", "tmux-sessions"} {
		loader, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, loader, name)
	}

	_, err := Lookup("buitin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "builtin"`)

	_, err = Lookup("builtins")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "builtin"`)

	_, err = Lookup("zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "choose one of builtin, file, tmux-sessions")
}

func TestLoad(t *testing.T) {
	set, err := Load("", Params{})
	require.NoError(t, err)
	assert.Equal(t, NameBuiltin, set.Name)

	_, err = Load("file", Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs an options file")

	path := writeFile(t, "[[options]]\nlabel = \"a\"\n")
	set, err = Load("file", Params{File: path})
	require.NoError(t, err)
	assert.Len(t, set.Options, 1)
}
