//go:build windows

package tgdfile

import "golang.org/x/sys/windows"

// sizeFd reports the size of the open file via GetFileSizeEx, which leaves
// the file position untouched. The call goes straight to Win32, so an
// invalid handle fails with ERROR_INVALID_HANDLE instead of tripping any
// C-runtime parameter validation.
func sizeFd(fd int) (int64, error) {
	var size int64
	if err := windows.GetFileSizeEx(windows.Handle(fd), &size); err != nil {
		return 0, err
	}
	return size, nil
}
