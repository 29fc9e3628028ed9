// Package collector turns command-line paths and directories into listing
// blocks: the entries to print now and the directories to list later.
package collector

import (
	"strings"

	"github.com/harrison/rl/internal/config"
	"github.com/harrison/rl/internal/fileutil"
	"github.com/harrison/rl/internal/models"
)

// Logger receives recoverable path failures and debug diagnostics.
type Logger interface {
	ReportPathError(path string, err error)
	LogDebug(format string, args ...interface{})
}

// Result is one listing block's worth of collected names.
// Entries and Pending are disjoint and each sorted by name.
type Result struct {
	Entries []models.Entry
	Pending []models.PendingDirectory
	// Expanded is true when the block is a directory's contents rather
	// than a set of command-line arguments.
	Expanded bool
}

// Collector reads through a FileSystem according to a Config.
type Collector struct {
	fs  fileutil.FileSystem
	cfg *config.Config
	log Logger
}

// New creates a Collector. A nil logger discards reports.
func New(fsys fileutil.FileSystem, cfg *config.Config, log Logger) *Collector {
	if log == nil {
		log = nopLogger{}
	}
	return &Collector{fs: fsys, cfg: cfg, log: log}
}

// Collect classifies the top-level paths. With no paths it lists ".".
//
// A single directory argument is expanded in place unless directory-only
// mode is set. Otherwise each path is probed independently: a path that
// cannot be probed is reported and skipped, a file becomes an entry, and a
// directory becomes an entry (directory-only) or a pending directory.
func (c *Collector) Collect(paths []string) (Result, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if len(paths) == 1 && !c.cfg.DirectoryOnly {
		meta, err := c.fs.Stat(paths[0])
		if err != nil {
			c.log.ReportPathError(paths[0], err)
			return Result{}, nil
		}
		if meta.IsDir() {
			return c.expand(paths[0], meta)
		}
		return Result{Entries: []models.Entry{{Name: paths[0], Meta: meta}}}, nil
	}

	var res Result
	for _, p := range paths {
		meta, err := c.fs.Stat(p)
		if err != nil {
			c.log.ReportPathError(p, err)
			continue
		}
		if meta.IsDir() && !c.cfg.DirectoryOnly {
			res.Pending = append(res.Pending, models.PendingDirectory{Path: p, Name: p, Meta: meta})
			continue
		}
		res.Entries = append(res.Entries, models.Entry{Name: p, Meta: meta})
	}

	models.SortEntries(res.Entries)
	models.SortPending(res.Pending)
	return res, nil
}

// Expand lists the contents of a pending directory.
func (c *Collector) Expand(dir models.PendingDirectory) (Result, error) {
	return c.expand(dir.Path, dir.Meta)
}

// expand reads the children of the directory at path. Any read failure,
// including metadata of an individual child, is returned as a *ListError.
func (c *Collector) expand(path string, meta models.Descriptor) (Result, error) {
	names, err := c.fs.ReadDir(path)
	if err != nil {
		return Result{}, &ListError{Path: path, Err: err}
	}
	c.log.LogDebug("expanding %s (%d children)", path, len(names))

	res := Result{Expanded: true}
	for _, name := range names {
		if IsHidden(name) && !c.cfg.ShowHidden() {
			continue
		}

		child := JoinPath(path, name)
		childMeta, err := c.fs.Lstat(child)
		if err != nil {
			return Result{}, &ListError{Path: child, Err: err}
		}

		if childMeta.IsDir() && c.cfg.Recursive {
			res.Pending = append(res.Pending, models.PendingDirectory{Path: child, Name: name, Meta: childMeta})
			continue
		}
		res.Entries = append(res.Entries, models.Entry{Name: name, Meta: childMeta})
	}

	models.SortEntries(res.Entries)
	models.SortPending(res.Pending)

	if c.cfg.ShowAll {
		parentMeta, err := c.fs.Stat(JoinPath(path, ".."))
		if err != nil {
			return Result{}, &ListError{Path: JoinPath(path, ".."), Err: err}
		}
		self := []models.Entry{{Name: ".", Meta: meta}, {Name: "..", Meta: parentMeta}}
		res.Entries = append(self, res.Entries...)
	}

	return res, nil
}

// IsHidden reports whether a leaf name starts with a dot.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// JoinPath appends a child name to a directory path without cleaning it,
// so "." stays visible in nested paths ("./sub").
func JoinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

type nopLogger struct{}

func (nopLogger) ReportPathError(string, error)   {}
func (nopLogger) LogDebug(string, ...interface{}) {}
