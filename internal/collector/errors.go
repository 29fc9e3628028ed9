package collector

import "github.com/harrison/rl/internal/fileutil"

// ListError reports a directory whose contents could not be read, or a child
// whose metadata could not be read while listing it.
type ListError struct {
	Path string // path that failed
	Err  error  // underlying error
}

// Error returns "<path>: <system error message>".
func (e *ListError) Error() string {
	return e.Path + ": " + fileutil.SystemMessage(e.Err)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ListError) Unwrap() error {
	return e.Err
}
