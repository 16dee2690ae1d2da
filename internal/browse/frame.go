package browse

import (
	"path/filepath"
)

// Frame is the state of one directory level. A new frame is built every
// time a directory is entered and dropped when the user backs out of it.
type Frame struct {
	Root    string
	Dir     string
	Entries []Entry
	Cursor  int
	// Err is the listing failure, if any. The frame is then empty but
	// still usable, so Back keeps working.
	Err error
}

// Open clamps dir to root, lists it and puts the cursor on the first entry.
func Open(root, dir, hidden string) *Frame {
	dir = Clamp(root, dir)
	entries, err := List(dir, hidden)
	return &Frame{
		Root:    filepath.Clean(root),
		Dir:     dir,
		Entries: entries,
		Err:     err,
	}
}

// Len is the number of entries.
func (f *Frame) Len() int {
	return len(f.Entries)
}

// Empty reports whether there is nothing to select.
func (f *Frame) Empty() bool {
	return len(f.Entries) == 0
}

func (f *Frame) last() int {
	return len(f.Entries) - 1
}

// Up moves the cursor one entry back.
func (f *Frame) Up() {
	f.move(-1)
}

// Down moves the cursor one entry forward.
func (f *Frame) Down() {
	f.move(1)
}

// PageBack moves the cursor one page back.
func (f *Frame) PageBack(size int) {
	f.move(-pageSize(size))
}

// PageForward moves the cursor one page forward.
func (f *Frame) PageForward(size int) {
	f.move(pageSize(size))
}

func (f *Frame) move(delta int) {
	if f.Empty() {
		f.Cursor = 0
		return
	}
	f.Cursor = max(0, min(f.last(), f.Cursor+delta))
}

func pageSize(size int) int {
	if size < 1 {
		return 1
	}
	return size
}

// Page is the index of the page holding the cursor.
func (f *Frame) Page(size int) int {
	return f.Cursor / pageSize(size)
}

// Position is the 1-based cursor position, 0 for an empty listing.
func (f *Frame) Position() int {
	if f.Empty() {
		return 0
	}
	return f.Cursor + 1
}

// Selected returns the entry under the cursor.
func (f *Frame) Selected() (Entry, bool) {
	if f.Empty() || f.Cursor < 0 || f.Cursor > f.last() {
		return Entry{}, false
	}
	return f.Entries[f.Cursor], true
}

// PathOf joins an entry name to the frame's directory.
func (f *Frame) PathOf(e Entry) string {
	return filepath.Join(f.Dir, e.Name)
}

// Header is the directory relative to the root, as shown on screen.
func (f *Frame) Header() string {
	return Rel(f.Root, f.Dir)
}
