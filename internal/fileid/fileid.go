// Package fileid answers "are these two handles the same file?" using the
// volume serial number and file index the OS reports for an open handle.
package fileid

import (
	"fmt"

	"github.com/microsoft/hcsshim/winhandle/internal/handle"
	"github.com/microsoft/hcsshim/winhandle/internal/log"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
	"github.com/microsoft/hcsshim/winhandle/internal/winapi"
)

// API is the subset of system calls used here.
type API interface {
	handle.Closer
	CreateFile(path string, access, share, disposition, flags uint32) (handle.Raw, error)
	GetFileInformationByHandle(h handle.Raw) (winapi.FileInformation, error)
	GetFileType(h handle.Raw) (uint32, error)
}

// ID identifies a file on a machine. Two handles with equal IDs refer to the
// same file, whatever path or link was used to open them.
type ID struct {
	VolumeSerial uint32
	Index        uint64
}

func (id ID) String() string {
	return fmt.Sprintf("%08x:%016x", id.VolumeSerial, id.Index)
}

// Of queries the identity of the file behind h.
func Of(api API, h handle.Borrowed) (ID, error) {
	if h.IsNull() {
		return ID{}, oserr.NullHandle("GetFileInformationByHandle")
	}
	info, err := api.GetFileInformationByHandle(h.Raw())
	h.KeepAlive()
	if err != nil {
		return ID{}, oserr.FromError("GetFileInformationByHandle", err, nil)
	}
	return ID{
		VolumeSerial: info.VolumeSerialNumber,
		Index:        uint64(info.FileIndexHigh)<<32 | uint64(info.FileIndexLow),
	}, nil
}

// Same reports whether a and b refer to the same file. Any query failure is
// returned rather than treated as "different".
func Same(api API, a, b handle.Borrowed) (bool, error) {
	ia, err := Of(api, a)
	if err != nil {
		return false, err
	}
	ib, err := Of(api, b)
	if err != nil {
		return false, err
	}
	return ia == ib, nil
}

// Open opens path for identity queries only. It requests no data access and
// shares everything, so it succeeds on files other processes hold open, and
// on directories.
func Open(api API, path string) (*handle.Owned, error) {
	raw, err := api.CreateFile(
		path,
		0,
		winapi.FileShareRead|winapi.FileShareWrite|winapi.FileShareDelete,
		winapi.OpenExisting,
		winapi.FileFlagBackupSemantics,
	)
	if err != nil {
		err = oserr.FromError("CreateFile", err, nil)
		logger := log.WithComponent("fileid")
		logger.Debug().Err(err).Str("path", path).Msg("open failed")
		return nil, err
	}
	return handle.Acquire(raw, api, handle.WithKind("file")), nil
}

// OfPath opens path, queries its identity and closes it.
func OfPath(api API, path string) (ID, error) {
	h, err := Open(api, path)
	if err != nil {
		return ID{}, err
	}
	var id ID
	err = handle.Use(h, func(b handle.Borrowed) error {
		var err error
		id, err = Of(api, b)
		return err
	})
	return id, err
}

// SamePath reports whether two paths name the same file.
func SamePath(api API, a, b string) (bool, error) {
	ia, err := OfPath(api, a)
	if err != nil {
		return false, err
	}
	ib, err := OfPath(api, b)
	if err != nil {
		return false, err
	}
	return ia == ib, nil
}
