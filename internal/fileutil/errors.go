package fileutil

import (
	"errors"
	"io/fs"
)

// SystemMessage returns the message of the innermost *fs.PathError cause,
// dropping the operation and path it would add. Other errors are returned
// as err.Error().
func SystemMessage(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) && pathErr.Err != nil {
		return pathErr.Err.Error()
	}
	return err.Error()
}
