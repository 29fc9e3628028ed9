package fileutil

import (
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"time"

	"github.com/harrison/rl/internal/models"
)

// FileSystem is the metadata-reading collaborator of the collector.
type FileSystem interface {
	// Stat returns metadata for path, following symbolic links.
	Stat(path string) (models.Descriptor, error)
	// Lstat returns metadata for path without following a final symbolic link.
	Lstat(path string) (models.Descriptor, error)
	// ReadDir returns the leaf names of the children of the directory at path.
	ReadDir(path string) ([]string, error)
}

// OSFileSystem implements FileSystem with the os package.
type OSFileSystem struct {
	users  map[uint32]string
	groups map[uint32]string
}

// NewOSFileSystem creates an OSFileSystem with empty id caches.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

// Stat returns metadata using os.Stat.
func (o *OSFileSystem) Stat(path string) (models.Descriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return o.describe(info), nil
}

// Lstat returns metadata using os.Lstat.
func (o *OSFileSystem) Lstat(path string) (models.Descriptor, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return o.describe(info), nil
}

// ReadDir lists child names using os.ReadDir.
func (o *OSFileSystem) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (o *OSFileSystem) describe(info fs.FileInfo) *osDescriptor {
	d := &osDescriptor{info: info}
	if uid, gid, ok := ownerIDs(info); ok {
		d.owner = o.userName(uid)
		d.group = o.groupName(gid)
	}
	return d
}

func (o *OSFileSystem) userName(uid uint32) string {
	if name, ok := o.users[uid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(name); err == nil {
		name = u.Username
	}
	o.users[uid] = name
	return name
}

func (o *OSFileSystem) groupName(gid uint32) string {
	if name, ok := o.groups[gid]; ok {
		return name
	}
	name := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(name); err == nil {
		name = g.Name
	}
	o.groups[gid] = name
	return name
}

// osDescriptor wraps an fs.FileInfo with resolved owner and group names.
type osDescriptor struct {
	info  fs.FileInfo
	owner string
	group string
}

func (d *osDescriptor) IsDir() bool        { return d.info.IsDir() }
func (d *osDescriptor) Mode() fs.FileMode  { return d.info.Mode() }
func (d *osDescriptor) Size() int64        { return d.info.Size() }
func (d *osDescriptor) ModTime() time.Time { return d.info.ModTime() }
func (d *osDescriptor) Owner() string      { return d.owner }
func (d *osDescriptor) Group() string      { return d.group }
