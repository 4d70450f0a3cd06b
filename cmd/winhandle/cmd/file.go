package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/microsoft/hcsshim/winhandle/internal/fileid"
	"github.com/microsoft/hcsshim/winhandle/internal/handle"
)

func newFileCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "file",
		Short: "Query file identity and device type",
	}
	c.AddCommand(newFileIDCmd(a), newFileTypeCmd(a), newFileSameCmd(a))
	return c
}

func newFileIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "id <path>",
		Short: "Print the volume serial number and file index of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := fileid.OfPath(a.api, args[0])
			if err != nil {
				return fmt.Errorf("identify %s: %w", args[0], err)
			}
			return a.emit(cmd, map[string]any{
				"path":         args[0],
				"volumeSerial": fmt.Sprintf("%08x", id.VolumeSerial),
				"index":        fmt.Sprintf("%016x", id.Index),
			}, func(w io.Writer) {
				fmt.Fprintf(w, "%s  %s\n", id, args[0])
			})
		},
	}
}

func newFileTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type <path>",
		Short: "Print the device class (disk, char, pipe) of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := fileid.Open(a.api, args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			var kind fileid.Kind
			err = handle.Use(h, func(b handle.Borrowed) error {
				var err error
				kind, err = fileid.TypeOf(a.api, b)
				return err
			})
			if err != nil {
				return fmt.Errorf("type of %s: %w", args[0], err)
			}
			return a.emit(cmd, map[string]any{"path": args[0], "type": kind.String()}, func(w io.Writer) {
				fmt.Fprintf(w, "%s  %s\n", kind, args[0])
			})
		},
	}
}

func newFileSameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "same <path> <path>",
		Short: "Report whether two paths name the same file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			same, err := fileid.SamePath(a.api, args[0], args[1])
			if err != nil {
				return fmt.Errorf("compare %s and %s: %w", args[0], args[1], err)
			}
			return a.emit(cmd, map[string]any{"a": args[0], "b": args[1], "same": same}, func(w io.Writer) {
				if same {
					fmt.Fprintln(w, "same file")
				} else {
					fmt.Fprintln(w, "different files")
				}
			})
		},
	}
}
