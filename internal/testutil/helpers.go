// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// WriteTree creates files below root. A name ending in "/" is created as a
// directory; any other name is written with its content, parents included.
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// MediaTree is a small browsing root: two directories, a playable file and
// a hidden file.
func MediaTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteTree(t, root, map[string]string{
		"a/":          "",
		"a/inner.txt": "inner",
		"b/":          "",
		"clip.mp4":    "video",
		".hidden":     "hidden",
	})
	return root
}

// StripANSI removes styling from rendered output.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
