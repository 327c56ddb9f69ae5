package texpath

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Info
	}{
		{
			name: "project document",
			path: "/home/u/proj/topic/notes.tex",
			want: Info{
				Folder:       "/home/u/proj/topic",
				Filename:     "notes.tex",
				Stem:         "notes",
				Extension:    ".tex",
				BottomFolder: "/home/u/proj",
				TopFolder:    "topic",
			},
		},
		{
			name: "single parent segment",
			path: "/work/thesis.tex",
			want: Info{
				Folder:       "/work",
				Filename:     "thesis.tex",
				Stem:         "thesis",
				Extension:    ".tex",
				BottomFolder: "/",
				TopFolder:    "work",
			},
		},
		{
			name: "root-level file degenerates",
			path: "/notes.tex",
			want: Info{
				Folder:       "/",
				Filename:     "notes.tex",
				Stem:         "notes",
				Extension:    ".tex",
				BottomFolder: "/",
				TopFolder:    "/",
			},
		},
		{
			name: "redundant separators are cleaned first",
			path: "/home/u//proj/./topic/notes.tex",
			want: Info{
				Folder:       "/home/u/proj/topic",
				Filename:     "notes.tex",
				Stem:         "notes",
				Extension:    ".tex",
				BottomFolder: "/home/u/proj",
				TopFolder:    "topic",
			},
		},
		{
			name: "multiple dots keep only the last extension",
			path: "/home/u/proj/topic/notes.v2.tex",
			want: Info{
				Folder:       "/home/u/proj/topic",
				Filename:     "notes.v2.tex",
				Stem:         "notes.v2",
				Extension:    ".tex",
				BottomFolder: "/home/u/proj",
				TopFolder:    "topic",
			},
		},
		{
			name: "no extension",
			path: "/home/u/proj/topic/Makefile",
			want: Info{
				Folder:       "/home/u/proj/topic",
				Filename:     "Makefile",
				Stem:         "Makefile",
				Extension:    "",
				BottomFolder: "/home/u/proj",
				TopFolder:    "topic",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decompose(tt.path)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Folder must rejoin from its two halves and the filename from stem
// and extension, reconstructing the cleaned input exactly.
func TestDecomposeReconstruction(t *testing.T) {
	paths := []string{
		"/home/u/proj/topic/notes.tex",
		"/work/thesis.tex",
		"/a/b/c/d/e/paper.tex",
		"/home/u/proj/topic/notes.v2.tex",
		"/srv/shared/img.tar.gz",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			info := Decompose(path)

			assert.Equal(t, info.Folder, filepath.Join(info.BottomFolder, info.TopFolder))
			assert.Equal(t, info.Filename, info.Stem+info.Extension)
			assert.Equal(t, filepath.Clean(path), filepath.Join(info.Folder, info.Filename))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("absolute path is cleaned", func(t *testing.T) {
		got, err := Normalize("/home/u//proj/./topic/notes.tex")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/proj/topic/notes.tex", got)
	})

	t.Run("relative path becomes absolute", func(t *testing.T) {
		got, err := Normalize("notes.tex")
		require.NoError(t, err)

		wd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(wd, "notes.tex"), got)
	})

	t.Run("tilde expands to home", func(t *testing.T) {
		got, err := Normalize("~/proj/topic/notes.tex")
		require.NoError(t, err)

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "proj", "topic", "notes.tex"), got)
	})

	t.Run("tilde alone expands to home", func(t *testing.T) {
		got, err := Normalize("~")
		require.NoError(t, err)

		home, err := os.UserHomeDir()
		require.NoError(t, err)
		assert.Equal(t, home, got)
	})
}
