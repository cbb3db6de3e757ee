// Package resources mirrors non-code asset trees into the output artifact.
//
// Assets (structured data files, UI-description documents, icon trees) are
// copied byte-for-byte with their relative paths preserved. The mirror is
// independent of the code pipeline and writes only into the build's staging
// directory, so a failed copy never corrupts an already-published artifact.
package resources

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/manifest"
)

// CopyError indicates a resource mount could not be mirrored.
type CopyError struct {
	Mount manifest.Mount
	Path  string
	Err   error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("mirroring %q -> %q: %s: %v", e.Mount.From, e.Mount.To, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error { return errors.ErrResource }

// Mirror copies every declared mount from the bundle root into dstRoot.
// Returns the number of files copied.
func Mirror(root string, mounts []manifest.Mount, dstRoot string) (int, error) {
	total := 0
	for _, mnt := range mounts {
		n, err := copyTree(root, mnt, dstRoot)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func copyTree(root string, mnt manifest.Mount, dstRoot string) (int, error) {
	src := filepath.Join(root, mnt.From)
	dst := filepath.Join(dstRoot, mnt.To)

	info, err := os.Stat(src)
	if err != nil {
		return 0, &CopyError{Mount: mnt, Path: src, Err: err}
	}
	if !info.IsDir() {
		return 0, &CopyError{Mount: mnt, Path: src, Err: fmt.Errorf("not a directory")}
	}

	count := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &CopyError{Mount: mnt, Path: path, Err: err}
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return &CopyError{Mount: mnt, Path: path, Err: err}
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return &CopyError{Mount: mnt, Path: target, Err: err}
			}
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return &CopyError{Mount: mnt, Path: path, Err: err}
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
