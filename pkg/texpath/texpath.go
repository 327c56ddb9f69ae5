// Package texpath decomposes a document path into the folder pieces
// the transfer and repair steps work with: the containing folder, the
// folder's parent (the local sync target) and its last segment (the
// project directory name under the remote staging root).
package texpath

import (
	"os"
	"path/filepath"
	"strings"
)

// Info is a read-only decomposition of a document path.
//
// Invariants: Folder == filepath.Join(BottomFolder, TopFolder) and
// Filename == Stem + Extension.
type Info struct {
	// Folder is the directory containing the document
	Folder string

	// Filename is the base name including the extension
	Filename string

	// Stem is the base name without the extension
	Stem string

	// Extension is the extension including the leading dot
	Extension string

	// BottomFolder is the parent of Folder, the local sync target
	BottomFolder string

	// TopFolder is the last segment of Folder, the project directory
	// name under the remote staging root
	TopFolder string
}

// Decompose splits a document path into an Info record. The path is
// cleaned first so trailing separators and "." segments never leak
// into the record. Pure and total: a degenerate input (root-level
// file, relative path) produces a degenerate record, not an error.
func Decompose(path string) Info {
	cleaned := filepath.Clean(path)
	folder := filepath.Dir(cleaned)
	filename := filepath.Base(cleaned)
	extension := filepath.Ext(filename)

	return Info{
		Folder:       folder,
		Filename:     filename,
		Stem:         strings.TrimSuffix(filename, extension),
		Extension:    extension,
		BottomFolder: filepath.Dir(folder),
		TopFolder:    filepath.Base(folder),
	}
}

// Normalize expands a leading ~, makes the path absolute against the
// working directory, and cleans it
func Normalize(path string) (string, error) {
	expanded := expandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", err
	}

	return filepath.Clean(abs), nil
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv("HOME")
			if homeDir == "" {
				// Can't expand, return as-is
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
