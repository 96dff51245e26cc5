//go:build !windows

package tgdfile

import "golang.org/x/sys/unix"

// openFd opens path with the flags passed through verbatim to the OS.
func openFd(path string, flag int, mode uint32) (int, error) {
	fd, err := unix.Open(path, flag, mode)
	if err != nil {
		return InvalidFd, err
	}
	return fd, nil
}

func closeFd(fd int) error {
	return unix.Close(fd)
}
