package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ib-77/faultline/pkg/rop"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Open a file, creating it when it does not exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			r := a.files.OpenOrCreate(path)
			if err, failed := r.Failure(); failed {
				pterm.Warning.WithWriter(out).Printfln("%s: %s", path, err.Kind().Description())
			}
			file := r.Expect("cannot open " + path)
			defer file.Close()

			pterm.Success.WithWriter(out).Printfln("ready: %s", file.Name())
			return nil
		},
	}
}

func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file; a read failure is a fault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			r := rop.DoWith(commandErrors, func(f *rop.Frame[*commandError]) rop.Result[string, *commandError] {
				return rop.Success[string, *commandError](rop.TryFrom(f, a.files.ReadString(path)))
			})

			_, err := cmd.OutOrStdout().Write([]byte(r.Expect("cannot read " + path)))
			return err
		},
	}
}
