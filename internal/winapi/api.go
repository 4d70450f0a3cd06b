// Package winapi is the system-call surface the rest of the module runs
// against.
//
// API has one method per Win32 call in use. New returns the kernel32-backed
// implementation (Windows only); tests use mocks.APIMock. Methods return the
// raw Win32 error (a syscall.Errno) unchanged; classification happens in the
// calling package.
package winapi

import "github.com/microsoft/hcsshim/winhandle/internal/handle"

//go:generate go run github.com/matryer/moq@latest -out mocks/api.go -pkg mocks . API

// API is the set of system calls used by this module.
type API interface {
	handle.Closer

	// OpenProcess opens the process pid with the given access mask.
	OpenProcess(access uint32, inherit bool, pid uint32) (handle.Raw, error)

	// GetProcessID returns the id of the process behind h.
	GetProcessID(h handle.Raw) (uint32, error)

	// TerminateProcess ends the process behind h with exitCode.
	TerminateProcess(h handle.Raw, exitCode uint32) error

	// GetExitCodeProcess returns the exit code, or StillActive while running.
	GetExitCodeProcess(h handle.Raw) (uint32, error)

	// CurrentProcess returns the current-process pseudo-handle. It never
	// needs closing.
	CurrentProcess() handle.Raw

	// CreateFile opens path. The returned handle is owned by the caller.
	CreateFile(path string, access, share, disposition, flags uint32) (handle.Raw, error)

	// GetFileInformationByHandle returns identity and attribute data.
	GetFileInformationByHandle(h handle.Raw) (FileInformation, error)

	// GetFileType returns the FILE_TYPE_* value. A genuine failure is
	// reported as an error; FILE_TYPE_UNKNOWN alone is not one.
	GetFileType(h handle.Raw) (uint32, error)

	GetConsoleMode(h handle.Raw) (uint32, error)
	SetConsoleMode(h handle.Raw, mode uint32) error

	// GetConsoleSize returns the visible window of the console screen
	// buffer in character cells.
	GetConsoleSize(h handle.Raw) (cols, rows int, err error)

	// GetStdHandle returns one of the process standard handles. The handle
	// belongs to the process and must not be closed.
	GetStdHandle(which uint32) (handle.Raw, error)

	// FormatMessage renders the system description of a Win32 code.
	FormatMessage(code uint32) string
}

// FileInformation is the subset of BY_HANDLE_FILE_INFORMATION in use.
type FileInformation struct {
	FileAttributes     uint32
	VolumeSerialNumber uint32
	NumberOfLinks      uint32
	FileIndexHigh      uint32
	FileIndexLow       uint32
}

// Win32 constants shared by callers of API.
const (
	StillActive uint32 = 259

	StdInputHandle  uint32 = 0xFFFFFFF6 // (DWORD)-10
	StdOutputHandle uint32 = 0xFFFFFFF5 // (DWORD)-11
	StdErrorHandle  uint32 = 0xFFFFFFF4 // (DWORD)-12

	FileShareRead   uint32 = 0x00000001
	FileShareWrite  uint32 = 0x00000002
	FileShareDelete uint32 = 0x00000004

	OpenExisting uint32 = 3

	FileFlagBackupSemantics uint32 = 0x02000000

	FileTypeUnknown uint32 = 0x0000
	FileTypeDisk    uint32 = 0x0001
	FileTypeChar    uint32 = 0x0002
	FileTypePipe    uint32 = 0x0003
	FileTypeRemote  uint32 = 0x8000
)
