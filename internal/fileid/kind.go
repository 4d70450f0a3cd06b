package fileid

import (
	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi"
)

// Kind is the device class of an open handle.
type Kind int

const (
	Unknown Kind = iota
	Disk
	Char
	Pipe
)

func (k Kind) String() string {
	switch k {
	case Disk:
		return "disk"
	case Char:
		return "char"
	case Pipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// TypeOf reports the device class of h. The remote bit is ignored. A handle
// of an unrecognised class yields Unknown with no error; only a failed query
// is an error.
func TypeOf(api API, h handle.Borrowed) (Kind, error) {
	if h.IsNull() {
		return Unknown, oserr.NullHandle("GetFileType")
	}
	t, err := api.GetFileType(h.Raw())
	h.KeepAlive()
	if err != nil {
		return Unknown, oserr.FromError("GetFileType", err, nil)
	}
	switch t &^ winapi.FileTypeRemote {
	case winapi.FileTypeDisk:
		return Disk, nil
	case winapi.FileTypeChar:
		return Char, nil
	case winapi.FileTypePipe:
		return Pipe, nil
	default:
		return Unknown, nil
	}
}
