// Package synctex repairs the debug-mapping file a remote build
// leaves behind. latexmk writes synctex records with absolute paths
// rooted at the remote staging directory; once the artifact is pulled
// back, those paths must point at the local project tree again or
// jump-to-source navigation stops working.
package synctex

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/angusrush/remotex/pkg/errors"
	"github.com/angusrush/remotex/pkg/logging"
)

// Suffix is the file suffix latexmk gives the debug-mapping artifact
const Suffix = ".synctex.gz"

// FileFor returns the mapping file path for a document stem inside folder
func FileFor(folder, stem string) string {
	return filepath.Join(folder, stem+Suffix)
}

// Result reports what a repair did
type Result struct {
	// Lines is the number of text lines in the mapping file
	Lines int

	// Substitutions is the number of remote-root occurrences rewritten
	Substitutions int
}

// Repair rewrites the mapping file at path so that absolute paths
// rooted at remoteRoot point at localRoot instead. Every occurrence
// of remoteRoot is replaced literally, then each line is normalized
// lexically (duplicate separators collapsed, "." segments resolved).
// The rewrite is line-preserving and lands atomically: the new
// content is compressed to a temporary file in the same directory,
// which is then renamed over the original.
//
// A second invocation with the same arguments is a no-op, since no
// occurrence of remoteRoot survives the first.
func Repair(path, localRoot, remoteRoot string) (*Result, error) {
	logger := logging.GetLogger("synctex")
	done := logging.LogOperationStart(logger, "synctex repair")
	defer done()

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "mapping file %s does not exist", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat mapping file %s", path)
	}

	text, err := readCompressed(path)
	if err != nil {
		return nil, err
	}

	rewritten, result := rewrite(text, localRoot, remoteRoot)

	if err := writeCompressed(path, rewritten, fi.Mode()); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("file", path).
		Int("lines", result.Lines).
		Int("substitutions", result.Substitutions).
		Msg("Mapping file rewritten")

	return result, nil
}

// rewrite performs the substitution and per-line normalization on the
// decompressed text. Line boundaries are untouched: splitting on the
// newline and rejoining preserves the count, the order, and any
// trailing newline exactly.
func rewrite(text, localRoot, remoteRoot string) (string, *Result) {
	segments := strings.Split(text, "\n")

	result := &Result{Lines: len(segments)}
	if segments[len(segments)-1] == "" {
		// Trailing newline: the final segment is not a line
		result.Lines--
	}

	for i, segment := range segments {
		if segment == "" {
			continue
		}
		if n := strings.Count(segment, remoteRoot); n > 0 {
			result.Substitutions += n
			segment = strings.ReplaceAll(segment, remoteRoot, localRoot)
		}
		segments[i] = filepath.Clean(segment)
	}

	return strings.Join(segments, "\n"), result
}

func readCompressed(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot open mapping file %s", path)
	}
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSynctexRepair, "%s is not a valid gzip stream", path)
	}
	defer func() { _ = zr.Close() }()

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSynctexRepair, "cannot decompress mapping file %s", path)
	}

	return string(data), nil
}

// writeCompressed compresses content to a temporary file next to path
// and renames it into place, carrying over the original file mode
func writeCompressed(path, content string, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create temporary file in %s", dir)
	}
	tmpName := tmp.Name()

	zw := gzip.NewWriter(tmp)
	_, werr := zw.Write([]byte(content))
	cerr := zw.Close()
	if err := tmp.Close(); werr == nil && cerr == nil {
		cerr = err
	}
	if werr != nil || cerr != nil {
		_ = os.Remove(tmpName)
		if werr == nil {
			werr = cerr
		}
		return errors.Wrapf(werr, errors.ErrFileWrite, "cannot write rewritten mapping file for %s", path)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot set mode on rewritten mapping file for %s", path)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace mapping file %s", path)
	}

	return nil
}
