package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angusrush/remotex/cmd/remotex/commands"
	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/testutil"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	// Setenv registers the restore, Unsetenv clears for real
	t.Setenv("REMOTEX_SERVER", "")
	require.NoError(t, os.Unsetenv("REMOTEX_SERVER"))
}

func TestRootCmdStructure(t *testing.T) {
	rootCmd := commands.NewRootCmd()

	expected := []string{"build", "synctex", "genconfig", "docs", "version", "completion", "man"}
	for _, name := range expected {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "command %s should be registered", name)
	}

	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("dry-run"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("format"))
}

func TestRootCmdNoSubcommand(t *testing.T) {
	isolate(t)

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestGenconfigCmd(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"genconfig"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "remote_root")
	assert.Contains(t, out.String(), "latexmk")
}

func TestGenconfigCmdWrite(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"genconfig", "--write"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Wrote configuration to ")

	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "remotex", "config.toml")
	assert.FileExists(t, path)
}

func TestSynctexCmd(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	project := filepath.Join(dir, "topic")
	require.NoError(t, os.MkdirAll(project, 0755))

	mapping := filepath.Join(project, "notes.synctex.gz")
	testutil.WriteGzip(t, mapping, "SyncTeX Version:1\nInput:1:/stage/topic/notes.tex\n")

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"synctex", "--local", dir, "--remote-root", "/stage", mapping})

	require.NoError(t, rootCmd.Execute())

	repaired := testutil.ReadGzip(t, mapping)
	assert.Contains(t, repaired, "Input:1:"+filepath.Join(dir, "topic", "notes.tex"))
	assert.NotContains(t, repaired, "/stage")
}

func TestSynctexCmdMissingFile(t *testing.T) {
	isolate(t)

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"synctex", "--local", "/l", "--remote-root", "/r",
		filepath.Join(t.TempDir(), "absent.synctex.gz")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestBuildCmdMissingServer(t *testing.T) {
	isolate(t)

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"build", "/tmp/whatever.tex"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "no server given")
}

func TestBuildCmdRejectsExtraArgs(t *testing.T) {
	isolate(t)

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"build", "a.tex", "b.tex"})

	err := rootCmd.Execute()
	require.Error(t, err)
	// Argument errors come from cobra uncoded
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(err))
}

func TestDocsCmd(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"docs", "--format", "text"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "# remotex")
	assert.Contains(t, out.String(), "remote_root")
}

func TestVersionCmd(t *testing.T) {
	isolate(t)

	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"version"})

	assert.NoError(t, rootCmd.Execute())
}

func TestCompletionCmd(t *testing.T) {
	isolate(t)

	var out bytes.Buffer
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"completion", "bash"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "remotex")
}

func TestManCmd(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	rootCmd := commands.NewRootCmd()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"man", "--dir", dir})

	require.NoError(t, rootCmd.Execute())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "man pages should be generated")
}
