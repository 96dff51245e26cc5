// Package tgdfile provides exclusive ownership of raw OS file descriptors.
//
// A Handle owns at most one descriptor at a time. Ownership is exclusive
// and transfers with Move/MoveFrom; it never duplicates. Release is
// guaranteed: an explicit Close reports failure, while release on an
// unreachable handle (or of a destination's previous descriptor during
// MoveFrom) is best-effort and its errors are unobservable by design.
//
// Handles are not safe for concurrent use; callers needing to share one
// across goroutines must synchronize externally.
package tgdfile

import (
	"os"
	"runtime"
)

// InvalidFd is the descriptor value of a Handle that owns no resource.
const InvalidFd = -1

// Descriptors 0 and 1 are the standard input and output streams. They are
// externally owned and never closed by this package, even when wrapped.
const minOwnedFd = 2

// Handle is an exclusive owner of one OS file descriptor. The zero value
// is not useful; obtain handles from Open, New, Stdin or Stdout.
type Handle struct {
	fd int
}

// New wraps an already-valid raw descriptor. Validity is the caller's
// responsibility; construction itself cannot fail.
func New(fd int) *Handle {
	h := &Handle{fd: fd}
	runtime.SetFinalizer(h, (*Handle).release)
	return h
}

// Open opens the named file with the given flags (os.O_RDONLY and friends)
// and optional permission bits for created files. On failure it returns an
// *OSError carrying the OS error and the offending path.
func Open(path string, flag int, perm ...os.FileMode) (*Handle, error) {
	var mode uint32
	if len(perm) > 0 {
		mode = uint32(perm[0].Perm())
	}
	fd, err := openFd(path, flag, mode)
	if err != nil {
		return nil, &OSError{Op: "open", Path: path, Err: err}
	}
	return New(fd), nil
}

// Stdin returns a handle wrapping the standard input descriptor.
func Stdin() *Handle {
	return New(0)
}

// Stdout returns a handle wrapping the standard output descriptor.
func Stdout() *Handle {
	return New(1)
}

// Fd returns the raw descriptor, or InvalidFd if the handle is empty.
// It has no side effects and does not transfer ownership; the value is
// meant for collaborators that perform byte-level I/O directly.
func (h *Handle) Fd() int {
	return h.fd
}

// Close releases the descriptor. Closing an empty handle, or one wrapping
// a standard stream, is a no-op success. Otherwise the OS close is issued
// exactly once and the handle is marked empty regardless of outcome, so a
// failed close is never retried against a possibly-reused descriptor.
func (h *Handle) Close() error {
	if h.fd < minOwnedFd {
		return nil
	}
	fd := h.fd
	h.fd = InvalidFd
	runtime.SetFinalizer(h, nil)
	if err := closeFd(fd); err != nil {
		return &OSError{Op: "close", Err: err}
	}
	return nil
}

// Size reports the current size in bytes of the open file. It does not
// move the file position. On an empty or already-closed handle the size
// query fails with an *OSError; it never reports zero silently.
func (h *Handle) Size() (int64, error) {
	size, err := sizeFd(h.fd)
	if err != nil {
		return 0, &OSError{Op: "size", Err: err}
	}
	return size, nil
}

// Move transfers ownership of the descriptor to a new handle. The
// receiver is left empty and must not be closed on the original
// descriptor's behalf afterwards.
func (h *Handle) Move() *Handle {
	fd := h.fd
	h.fd = InvalidFd
	return New(fd)
}

// MoveFrom transfers ownership of src's descriptor to h, leaving src
// empty. Any descriptor h previously owned is released first; a failure
// of that release is swallowed so the transfer itself cannot fail.
// Transferring a handle onto itself is a programming error and panics.
func (h *Handle) MoveFrom(src *Handle) {
	if h == src {
		panic("tgdfile: handle moved onto itself")
	}
	h.release()
	h.fd = src.fd
	src.fd = InvalidFd
	runtime.SetFinalizer(h, nil)
	runtime.SetFinalizer(h, (*Handle).release)
}

// release closes the owned descriptor, if any, discarding the outcome.
// It backs the finalizer and the non-failing release inside MoveFrom.
func (h *Handle) release() {
	if h.fd >= minOwnedFd {
		fd := h.fd
		h.fd = InvalidFd
		_ = closeFd(fd)
	}
}
