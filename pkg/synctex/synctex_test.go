package synctex

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angusrush/remotex/pkg/errors"
)

func writeMapping(t *testing.T, path, content string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func readMapping(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestRepair(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.synctex.gz")

	content := strings.Join([]string{
		"SyncTeX Version:1",
		"Input:1:/tmp/topic/notes.tex",
		"Input:2:/tmp/topic/chapters/intro.tex",
		"Output:pdf",
		"/tmp/topic/notes.tex:12:34",
		"",
	}, "\n")
	writeMapping(t, file, content)

	result, err := Repair(file, "/home/u/proj", "/tmp")
	require.NoError(t, err)

	got := readMapping(t, file)
	want := strings.Join([]string{
		"SyncTeX Version:1",
		"Input:1:/home/u/proj/topic/notes.tex",
		"Input:2:/home/u/proj/topic/chapters/intro.tex",
		"Output:pdf",
		"/home/u/proj/topic/notes.tex:12:34",
		"",
	}, "\n")
	assert.Equal(t, want, got)

	assert.Equal(t, 5, result.Lines)
	assert.Equal(t, 3, result.Substitutions)
}

func TestRepairSubstitutionComplete(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "paper.synctex.gz")

	content := strings.Join([]string{
		"Input:1:/tmp/paper/paper.tex",
		"Input:2:/tmp/paper/refs.bib",
		"/tmp/paper/paper.tex:1:1",
		"/tmp/paper/paper.tex:2:9",
		"x42:/tmp/paper/figs/plot.pdf",
		"",
	}, "\n")
	writeMapping(t, file, content)

	occurrences := strings.Count(content, "/tmp")

	result, err := Repair(file, "/home/u/work", "/tmp")
	require.NoError(t, err)

	got := readMapping(t, file)
	assert.Zero(t, strings.Count(got, "/tmp"), "no remote-root occurrence may survive")
	assert.Equal(t, occurrences, strings.Count(got, "/home/u/work"))
	assert.Equal(t, occurrences, result.Substitutions)
}

func TestRepairPreservesLineStructure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "trailing newline",
			content: "Input:1:/tmp/topic/notes.tex\n/tmp/topic/notes.tex:3:7\n",
		},
		{
			name:    "no trailing newline",
			content: "Input:1:/tmp/topic/notes.tex\n/tmp/topic/notes.tex:3:7",
		},
		{
			name:    "embedded empty lines",
			content: "Input:1:/tmp/topic/notes.tex\n\n\n/tmp/topic/notes.tex:3:7\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			file := filepath.Join(dir, "notes.synctex.gz")
			writeMapping(t, file, tt.content)

			_, err := Repair(file, "/home/u/proj", "/tmp")
			require.NoError(t, err)

			got := readMapping(t, file)
			assert.Equal(t, strings.Count(tt.content, "\n"), strings.Count(got, "\n"))
			assert.Equal(t,
				strings.HasSuffix(tt.content, "\n"),
				strings.HasSuffix(got, "\n"),
				"trailing newline must survive the rewrite")
		})
	}
}

func TestRepairSecondApplicationIsNoop(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.synctex.gz")

	writeMapping(t, file, "Input:1:/tmp/topic/notes.tex\n/tmp/topic/notes.tex:12:34\n")

	_, err := Repair(file, "/home/u/proj", "/tmp")
	require.NoError(t, err)
	first, err := os.ReadFile(file)
	require.NoError(t, err)

	result, err := Repair(file, "/home/u/proj", "/tmp")
	require.NoError(t, err)
	second, err := os.ReadFile(file)
	require.NoError(t, err)

	assert.Equal(t, first, second, "second repair must be byte-identical")
	assert.Zero(t, result.Substitutions)
}

func TestRepairNormalizesLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "self references and duplicate separators",
			line: "/a/./b//c",
			want: "/a/b/c",
		},
		{
			name: "normalization applies after substitution",
			line: "Input:1:/tmp//topic/./notes.tex",
			want: "Input:1:/home/u/proj/topic/notes.tex",
		},
		{
			name: "non-path content untouched",
			line: "SyncTeX Version:1",
			want: "SyncTeX Version:1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			file := filepath.Join(dir, "notes.synctex.gz")
			writeMapping(t, file, tt.line+"\n")

			_, err := Repair(file, "/home/u/proj", "/tmp")
			require.NoError(t, err)

			assert.Equal(t, tt.want+"\n", readMapping(t, file))
		})
	}
}

func TestRepairPreservesFileMode(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.synctex.gz")
	writeMapping(t, file, "/tmp/topic/notes.tex:1:1\n")
	require.NoError(t, os.Chmod(file, 0640))

	_, err := Repair(file, "/home/u/proj", "/tmp")
	require.NoError(t, err)

	fi, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), fi.Mode().Perm())
}

func TestRepairErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Repair(filepath.Join(t.TempDir(), "absent.synctex.gz"), "/home/u/proj", "/tmp")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("not a gzip stream", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "broken.synctex.gz")
		require.NoError(t, os.WriteFile(file, []byte("plain text, not gzip"), 0644))

		_, err := Repair(file, "/home/u/proj", "/tmp")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSynctexRepair))
	})

	t.Run("original survives a failed repair", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "broken.synctex.gz")
		original := []byte("plain text, not gzip")
		require.NoError(t, os.WriteFile(file, original, 0644))

		_, err := Repair(file, "/home/u/proj", "/tmp")
		require.Error(t, err)

		after, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, original, after)
	})
}

func TestFileFor(t *testing.T) {
	assert.Equal(t,
		"/home/u/proj/topic/notes.synctex.gz",
		FileFor("/home/u/proj/topic", "notes"))
}
