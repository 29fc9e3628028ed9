// Package models holds the value types shared by the collector, formatter,
// layout engine and printer.
package models

import (
	"io/fs"
	"sort"
	"time"
)

// Descriptor is the read-only view of filesystem metadata the listing core
// depends on. Implementations wrap whatever the OS (or a test) provides.
type Descriptor interface {
	IsDir() bool
	Mode() fs.FileMode
	Size() int64
	ModTime() time.Time
	Owner() string
	Group() string
}

// Entry is a name slated for display in the current listing block.
type Entry struct {
	Name string
	Meta Descriptor
}

// PendingDirectory is a directory whose contents are listed in a later block.
// Path is the traversable path; Name is the label used for sorting and display.
// The two diverge once recursion descends below the top level.
type PendingDirectory struct {
	Path string
	Name string
	Meta Descriptor
}

// OutputName is the display-ready form of an entry name.
type OutputName struct {
	Display string // Escaped, quoted and suffixed name
	Width   int    // Display width in terminal cells
	Quoted  bool   // Whether quoting was applied
}

// SortEntries orders entries by raw name, byte-wise.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}

// SortPending orders pending directories by display name, byte-wise.
func SortPending(dirs []PendingDirectory) {
	sort.SliceStable(dirs, func(i, j int) bool {
		return dirs[i].Name < dirs[j].Name
	})
}

// AsEntry returns the pending directory as a plain entry carrying its display name.
func (p PendingDirectory) AsEntry() Entry {
	return Entry{Name: p.Name, Meta: p.Meta}
}
