//go:build windows

package tgdfile

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// openFd opens path with FILE_SHARE_READ | FILE_SHARE_WRITE | FILE_SHARE_DELETE
// so files other processes hold open stay accessible.
// Supports extended-length paths (>260 chars) by automatically adding \\?\ prefix.
func openFd(path string, flag int, mode uint32) (int, error) {
	// Convert to extended-length path if needed (paths >260 chars hit MAX_PATH limit)
	// See: https://docs.microsoft.com/en-us/windows/win32/fileio/maximum-file-path-limitation
	if len(path) > 259 && !strings.HasPrefix(path, `\\?\`) {
		if strings.HasPrefix(path, `\\`) {
			// UNC path: \\server\share -> \\?\UNC\server\share
			path = `\\?\UNC\` + path[2:]
		} else {
			// Local path: C:\... -> \\?\C:\...
			path = `\\?\` + path
		}
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return InvalidFd, err
	}

	var access uint32
	switch flag & (os.O_RDONLY | os.O_WRONLY | os.O_RDWR) {
	case os.O_WRONLY:
		access = windows.GENERIC_WRITE
	case os.O_RDWR:
		access = windows.GENERIC_READ | windows.GENERIC_WRITE
	default:
		access = windows.GENERIC_READ
	}
	if flag&os.O_APPEND != 0 {
		access &^= windows.GENERIC_WRITE
		access |= windows.FILE_APPEND_DATA
	}

	var create uint32
	switch {
	case flag&(os.O_CREATE|os.O_EXCL) == os.O_CREATE|os.O_EXCL:
		create = windows.CREATE_NEW
	case flag&(os.O_CREATE|os.O_TRUNC) == os.O_CREATE|os.O_TRUNC:
		create = windows.CREATE_ALWAYS
	case flag&os.O_CREATE != 0:
		create = windows.OPEN_ALWAYS
	case flag&os.O_TRUNC != 0:
		create = windows.TRUNCATE_EXISTING
	default:
		create = windows.OPEN_EXISTING
	}

	handle, err := windows.CreateFile(
		pathPtr,
		access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		create,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return InvalidFd, err
	}
	return int(handle), nil
}

func closeFd(fd int) error {
	return windows.CloseHandle(windows.Handle(fd))
}
