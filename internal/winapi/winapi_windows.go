//go:build windows

package winapi

import (
	"golang.org/x/sys/windows"
	"golang.org/x/term"

	"github.com/microsoft/hcsshim/winhandle/internal/handle"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	// GetFileType is called directly: the x/sys wrapper turns a
	// FILE_TYPE_UNKNOWN result with no last error into EINVAL.
	procGetFileType = modkernel32.NewProc("GetFileType")
)

type system struct{}

// New returns the kernel32-backed API.
func New() API {
	return system{}
}

func (system) CloseHandle(h handle.Raw) error {
	return windows.CloseHandle(windows.Handle(h))
}

func (system) OpenProcess(access uint32, inherit bool, pid uint32) (handle.Raw, error) {
	h, err := windows.OpenProcess(access, inherit, pid)
	if err != nil {
		return handle.Null, err
	}
	return handle.Raw(h), nil
}

func (system) GetProcessID(h handle.Raw) (uint32, error) {
	return windows.GetProcessId(windows.Handle(h))
}

func (system) TerminateProcess(h handle.Raw, exitCode uint32) error {
	return windows.TerminateProcess(windows.Handle(h), exitCode)
}

func (system) GetExitCodeProcess(h handle.Raw) (uint32, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(windows.Handle(h), &code); err != nil {
		return 0, err
	}
	return code, nil
}

func (system) CurrentProcess() handle.Raw {
	return handle.Raw(windows.CurrentProcess())
}

func (system) CreateFile(path string, access, share, disposition, flags uint32) (handle.Raw, error) {
	namePtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return handle.Null, windows.ERROR_INVALID_NAME
	}
	h, err := windows.CreateFile(namePtr, access, share, nil, disposition, flags, 0)
	if err != nil {
		return handle.Null, err
	}
	return handle.Raw(h), nil
}

func (system) GetFileInformationByHandle(h handle.Raw) (FileInformation, error) {
	var data windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(h), &data); err != nil {
		return FileInformation{}, err
	}
	return FileInformation{
		FileAttributes:     data.FileAttributes,
		VolumeSerialNumber: data.VolumeSerialNumber,
		NumberOfLinks:      data.NumberOfLinks,
		FileIndexHigh:      data.FileIndexHigh,
		FileIndexLow:       data.FileIndexLow,
	}, nil
}

func (system) GetFileType(h handle.Raw) (uint32, error) {
	r, _, lastErr := procGetFileType.Call(uintptr(h))
	if r == uintptr(FileTypeUnknown) {
		if errno, ok := lastErr.(windows.Errno); ok && errno != windows.ERROR_SUCCESS {
			return FileTypeUnknown, errno
		}
	}
	return uint32(r), nil
}

func (system) GetConsoleMode(h handle.Raw) (uint32, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(h), &mode); err != nil {
		return 0, err
	}
	return mode, nil
}

func (system) SetConsoleMode(h handle.Raw, mode uint32) error {
	return windows.SetConsoleMode(windows.Handle(h), mode)
}

func (system) GetConsoleSize(h handle.Raw) (int, int, error) {
	return term.GetSize(int(h))
}

func (system) GetStdHandle(which uint32) (handle.Raw, error) {
	h, err := windows.GetStdHandle(which)
	if err != nil {
		return handle.Null, err
	}
	if h == 0 {
		// No standard handle is associated with this process.
		return handle.Null, windows.ERROR_INVALID_HANDLE
	}
	return handle.Raw(h), nil
}

func (system) FormatMessage(code uint32) string {
	var msgBuf [512]uint16
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0, code, 0, msgBuf[:], nil,
	)
	if err != nil || n == 0 {
		return ""
	}
	return trimMessage(windows.UTF16ToString(msgBuf[:n]))
}
