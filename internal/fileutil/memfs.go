package fileutil

import (
	"io/fs"
	"path"
	"syscall"
	"time"

	"github.com/harrison/rl/internal/models"
)

// MemFS is an in-memory FileSystem. Paths are slash-separated and cleaned
// with path.Clean; the root is ".". Children are reported in insertion order.
type MemFS struct {
	nodes   map[string]*memNode
	failOps map[string]error
}

type memNode struct {
	name     string
	mode     fs.FileMode
	size     int64
	modTime  time.Time
	target   string // symlink target, cleaned
	children []string
}

// NewMemFS returns an empty MemFS containing only the root directory.
func NewMemFS() *MemFS {
	m := &MemFS{
		nodes:   make(map[string]*memNode),
		failOps: make(map[string]error),
	}
	m.nodes["."] = &memNode{name: ".", mode: fs.ModeDir | 0o755}
	return m
}

// AddDir creates a directory and any missing parents.
func (m *MemFS) AddDir(p string) *MemFS {
	m.add(path.Clean(p), fs.ModeDir|0o755, 0, "")
	return m
}

// AddFile creates a regular file with the given permission bits and size.
func (m *MemFS) AddFile(p string, perm fs.FileMode, size int64) *MemFS {
	m.add(path.Clean(p), perm.Perm(), size, "")
	return m
}

// AddSpecial creates a node with an arbitrary mode, such as fs.ModeNamedPipe.
func (m *MemFS) AddSpecial(p string, mode fs.FileMode) *MemFS {
	m.add(path.Clean(p), mode, 0, "")
	return m
}

// AddSymlink creates a symbolic link at p pointing to target (relative to p's directory).
func (m *MemFS) AddSymlink(p, target string) *MemFS {
	p = path.Clean(p)
	if !path.IsAbs(target) {
		target = path.Join(path.Dir(p), target)
	}
	m.add(p, fs.ModeSymlink|0o777, int64(len(target)), path.Clean(target))
	return m
}

// Fail makes the given operation ("stat", "lstat" or "readdir") on p return err.
func (m *MemFS) Fail(op, p string, err error) *MemFS {
	m.failOps[op+" "+path.Clean(p)] = err
	return m
}

func (m *MemFS) add(p string, mode fs.FileMode, size int64, target string) {
	if _, ok := m.nodes[p]; ok {
		return
	}
	parent := path.Dir(p)
	if parent == p {
		// "/" has no parent to register with
		m.nodes[p] = &memNode{name: p, mode: fs.ModeDir | 0o755}
		return
	}
	if _, ok := m.nodes[parent]; !ok {
		m.add(parent, fs.ModeDir|0o755, 0, "")
	}
	m.nodes[p] = &memNode{
		name:    path.Base(p),
		mode:    mode,
		size:    size,
		modTime: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		target:  target,
	}
	m.nodes[parent].children = append(m.nodes[parent].children, path.Base(p))
}

func (m *MemFS) failure(op, p string) error {
	if err, ok := m.failOps[op+" "+p]; ok {
		return &fs.PathError{Op: op, Path: p, Err: err}
	}
	return nil
}

func (m *MemFS) lookup(op, p string, follow bool) (*memNode, error) {
	p = path.Clean(p)
	if err := m.failure(op, p); err != nil {
		return nil, err
	}
	n, ok := m.nodes[p]
	for hops := 0; ok && follow && n.mode&fs.ModeSymlink != 0; hops++ {
		if hops > 40 {
			return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrInvalid}
		}
		n, ok = m.nodes[n.target]
	}
	if !ok {
		return nil, &fs.PathError{Op: op, Path: p, Err: fs.ErrNotExist}
	}
	return n, nil
}

// Stat follows symbolic links.
func (m *MemFS) Stat(p string) (models.Descriptor, error) {
	n, err := m.lookup("stat", p, true)
	if err != nil {
		return nil, err
	}
	return memDescriptor{n}, nil
}

// Lstat does not follow a final symbolic link.
func (m *MemFS) Lstat(p string) (models.Descriptor, error) {
	n, err := m.lookup("lstat", p, false)
	if err != nil {
		return nil, err
	}
	return memDescriptor{n}, nil
}

// ReadDir returns child names in insertion order.
func (m *MemFS) ReadDir(p string) ([]string, error) {
	n, err := m.lookup("readdir", p, true)
	if err != nil {
		return nil, err
	}
	if !n.mode.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: path.Clean(p), Err: syscall.ENOTDIR}
	}
	return append([]string(nil), n.children...), nil
}

type memDescriptor struct{ n *memNode }

func (d memDescriptor) IsDir() bool        { return d.n.mode.IsDir() }
func (d memDescriptor) Mode() fs.FileMode  { return d.n.mode }
func (d memDescriptor) Size() int64        { return d.n.size }
func (d memDescriptor) ModTime() time.Time { return d.n.modTime }
func (d memDescriptor) Owner() string      { return "owner" }
func (d memDescriptor) Group() string      { return "group" }
