//go:build !windows

package winapi

import (
	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
)

type unsupported struct{}

// New returns an API whose every call fails with Unsupported.
func New() API {
	return unsupported{}
}

func errUnsupported(op string) error {
	return &oserr.Error{
		Op:   op,
		Kind: oserr.Unsupported,
		Raw:  oserr.ErrorCallNotImplemented,
		Msg:  "requires Windows",
	}
}

func (unsupported) CloseHandle(handle.Raw) error {
	return errUnsupported("CloseHandle")
}

func (unsupported) OpenProcess(uint32, bool, uint32) (handle.Raw, error) {
	return handle.Null, errUnsupported("OpenProcess")
}

func (unsupported) GetProcessID(handle.Raw) (uint32, error) {
	return 0, errUnsupported("GetProcessId")
}

func (unsupported) TerminateProcess(handle.Raw, uint32) error {
	return errUnsupported("TerminateProcess")
}

func (unsupported) GetExitCodeProcess(handle.Raw) (uint32, error) {
	return 0, errUnsupported("GetExitCodeProcess")
}

func (unsupported) CurrentProcess() handle.Raw {
	return handle.Invalid
}

func (unsupported) CreateFile(string, uint32, uint32, uint32, uint32) (handle.Raw, error) {
	return handle.Null, errUnsupported("CreateFile")
}

func (unsupported) GetFileInformationByHandle(handle.Raw) (FileInformation, error) {
	return FileInformation{}, errUnsupported("GetFileInformationByHandle")
}

func (unsupported) GetFileType(handle.Raw) (uint32, error) {
	return FileTypeUnknown, errUnsupported("GetFileType")
}

func (unsupported) GetConsoleMode(handle.Raw) (uint32, error) {
	return 0, errUnsupported("GetConsoleMode")
}

func (unsupported) SetConsoleMode(handle.Raw, uint32) error {
	return errUnsupported("SetConsoleMode")
}

func (unsupported) GetConsoleSize(handle.Raw) (int, int, error) {
	return 0, 0, errUnsupported("GetConsoleScreenBufferInfo")
}

func (unsupported) GetStdHandle(uint32) (handle.Raw, error) {
	return handle.Null, errUnsupported("GetStdHandle")
}

func (unsupported) FormatMessage(uint32) string {
	return ""
}
