package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/microsoft/hcsshim/winhandle/internal/console"
)

func newConsoleCmd(a *app) *cobra.Command {
	var stream string
	c := &cobra.Command{
		Use:   "console",
		Short: "Inspect and change the console attached to a standard stream",
	}
	c.PersistentFlags().StringVar(&stream, "stream", "stdout", "standard stream (stdin, stdout, stderr)")

	open := func() (*console.Console, error) {
		s, err := console.ParseStream(stream)
		if err != nil {
			return nil, err
		}
		con, err := console.Std(a.api, s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		return con, nil
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "mode",
			Short: "Print the console mode flags",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				con, err := open()
				if err != nil {
					return err
				}
				m := con.Initial()
				names := m.OutputString()
				if con.Stream() == console.Stdin {
					names = m.InputString()
				}
				return a.emit(cmd, map[string]any{"stream": con.Stream().String(), "mode": m.String(), "flags": names}, func(w io.Writer) {
					fmt.Fprintf(w, "%s  %s\n", m, names)
				})
			},
		},
		&cobra.Command{
			Use:   "size",
			Short: "Print the visible console window size",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				con, err := open()
				if err != nil {
					return err
				}
				cols, rows, err := con.Size()
				if err != nil {
					return fmt.Errorf("%s: %w", con.Stream(), err)
				}
				return a.emit(cmd, map[string]any{"stream": con.Stream().String(), "cols": cols, "rows": rows}, func(w io.Writer) {
					fmt.Fprintf(w, "%dx%d\n", cols, rows)
				})
			},
		},
		&cobra.Command{
			Use:       "vt <on|off>",
			Short:     "Turn virtual terminal sequence handling on or off",
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				con, err := open()
				if err != nil {
					return err
				}
				if con.Stream() == console.Stdin {
					a.logger.Warn().Msg("changing the stdin console mode can leave reads blocked under ConPTY")
				}
				if err := con.SetVirtualTerminal(args[0] == "on"); err != nil {
					return fmt.Errorf("%s: %w", con.Stream(), err)
				}
				m, err := con.Mode()
				if err != nil {
					return fmt.Errorf("%s: %w", con.Stream(), err)
				}
				return a.emit(cmd, map[string]any{"stream": con.Stream().String(), "mode": m.String()}, func(w io.Writer) {
					fmt.Fprintf(w, "%s  %s -> %s\n", con.Stream(), con.Initial(), m)
				})
			},
		},
	)
	return c
}
