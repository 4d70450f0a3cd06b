package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/microsoft/hcsshim/winhandle/internal/env"
	"github.com/microsoft/hcsshim/winhandle/internal/oserr"
)

// errorEnvVarNotFound is ERROR_ENVVAR_NOT_FOUND.
const errorEnvVarNotFound = 203

func newEnvCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "env",
		Short: "Query the process environment",
	}

	var reveal bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List environment variables, masking likely credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := a.env.Environ()
			if !reveal {
				for k, v := range vars {
					vars[k] = env.Mask(k, v)
				}
			}
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			return a.emit(cmd, vars, func(w io.Writer) {
				for _, k := range keys {
					fmt.Fprintf(w, "%s=%s\n", k, vars[k])
				}
			})
		},
	}
	list.Flags().BoolVar(&reveal, "reveal", false, "print sensitive values unmasked")

	c.AddCommand(
		&cobra.Command{
			Use:   "get <name>",
			Short: "Print one environment variable",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, ok := a.env.Get(args[0])
				if !ok {
					return &oserr.Error{
						Op:   "GetEnvironmentVariable",
						Kind: oserr.NotFound,
						Raw:  errorEnvVarNotFound,
						Msg:  fmt.Sprintf("%s is not set", args[0]),
					}
				}
				return a.emit(cmd, map[string]string{"name": args[0], "value": v}, func(w io.Writer) {
					fmt.Fprintln(w, v)
				})
			},
		},
		&cobra.Command{
			Use:   "nproc",
			Short: "Print the number of logical processors",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				n := a.env.ProcessorCount()
				return a.emit(cmd, map[string]int{"processors": n}, func(w io.Writer) {
					fmt.Fprintln(w, n)
				})
			},
		},
		list,
	)
	return c
}
