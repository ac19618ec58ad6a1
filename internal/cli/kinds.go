package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ib-77/faultline/pkg/rop/kind"
)

func newKindsCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds [name|code]",
		Short: "List error kinds with their codes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := kind.Registry()
			if len(args) == 1 {
				k, err := kind.Parse(args[0])
				if err != nil {
					return err
				}
				entries = []kind.Entry{entries[k]}
			}

			data := pterm.TableData{{"Code", "Name", "Description"}}
			for _, e := range entries {
				data = append(data, []string{e.Code, e.Name, e.Description})
			}
			return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
		},
	}
}
