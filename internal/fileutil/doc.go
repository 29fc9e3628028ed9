// Package fileutil adapts filesystem metadata access to the models.Descriptor
// capability interface used by the listing core.
//
// # Main Components
//
// FileSystem - the collaborator interface the collector reads through:
//   - Stat: metadata for a path, following symbolic links
//   - Lstat: metadata for a path, not following symbolic links
//   - ReadDir: leaf names of a directory's children
//
// OSFileSystem - production implementation backed by the os package. Owner
// and group names are resolved from numeric ids once and cached.
//
// MemFS - in-memory implementation with failure injection, for tests and for
// callers that want to list a synthetic tree.
//
// # Usage Examples
//
//	fsys := fileutil.NewOSFileSystem()
//	meta, err := fsys.Stat("/etc")
//	if err != nil {
//	    return err
//	}
//	if meta.IsDir() {
//	    names, err := fsys.ReadDir("/etc")
//	    ...
//	}
//
// Errors returned by OSFileSystem are the os package's *fs.PathError values,
// so callers can unwrap them down to the underlying errno.
package fileutil
