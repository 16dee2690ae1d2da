// Package browse holds the per-directory browsing state. A listing is
// clamped to the root, filtered and sorted; a Frame adds the cursor.
package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"vshell/internal/errors"
)

// Entry is one listed name.
type Entry struct {
	Name  string
	IsDir bool
}

// List reads dir, drops names starting with hidden and sorts the rest by
// name. Directories are detected by following symlinks.
func List(dir, hidden string) ([]Entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewFileError("cannot list directory", dir, errors.ListingFailed, err)
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if hidden != "" && strings.HasPrefix(name, hidden) {
			continue
		}
		entries = append(entries, Entry{Name: name, IsDir: isDir(filepath.Join(dir, name), de)})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func isDir(path string, de os.DirEntry) bool {
	if de.Type()&os.ModeSymlink == 0 {
		return de.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Within reports whether path is root or lies below it.
func Within(root, path string) bool {
	root = filepath.Clean(root)
	path = filepath.Clean(path)
	if root == "/" {
		return filepath.IsAbs(path)
	}
	return strings.HasPrefix(path+"/", root+"/")
}

// Clamp returns path when it lies within root, and root otherwise.
func Clamp(root, path string) string {
	if Within(root, path) {
		return filepath.Clean(path)
	}
	return filepath.Clean(root)
}

// Rel is the header text for dir: its path below root with a trailing
// slash, "/" for the root itself.
func Rel(root, dir string) string {
	dir = Clamp(root, dir)
	root = filepath.Clean(root)
	if root == "/" {
		if dir == "/" {
			return "/"
		}
		return dir + "/"
	}
	return strings.TrimPrefix(dir, root) + "/"
}
