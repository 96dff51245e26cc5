package tgdfile

import "fmt"

// OSError describes a failed OS call on a file handle. Err holds the
// underlying OS error (an errno on unix, a Win32 error on windows).
type OSError struct {
	Op   string // failing operation: "open", "close", "size"
	Path string // set for open failures
	Err  error
}

// Error implements the error interface.
func (e *OSError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying OS error.
func (e *OSError) Unwrap() error {
	return e.Err
}
