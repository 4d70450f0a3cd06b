package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "winhandle %s\n", appVersion)
			fmt.Fprintf(out, "  commit: %s\n", appCommit)
			fmt.Fprintf(out, "  built:  %s\n", appDate)
		},
	}
}
