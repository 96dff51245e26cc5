//go:build !windows

package tgdfile

import "golang.org/x/sys/unix"

// sizeFd reports the size of the open file via fstat. The file position
// is untouched. On an invalid descriptor the kernel reports EBADF.
func sizeFd(fd int) (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}
