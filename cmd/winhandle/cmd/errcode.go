package cmd

import (
	"fmt"
	"io"
	"strconv"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"

	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
)

func newErrcodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "errcode <code>",
		Short: "Classify a Win32 error code and print its system message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid error code %q", args[0])
			}
			e := oserr.FromRaw(uint32(raw))
			e.Msg = a.api.FormatMessage(e.Raw)

			return a.emit(cmd, platformerrors.ToJSON(e), func(w io.Writer) {
				fmt.Fprintf(w, "code:      %d (%#x)\n", e.Raw, e.Raw)
				fmt.Fprintf(w, "kind:      %s\n", e.Kind)
				fmt.Fprintf(w, "retryable: %t\n", platformerrors.IsRetryable(e))
				if e.Msg != "" {
					fmt.Fprintf(w, "message:   %s\n", e.Msg)
				}
			})
		},
	}
}
