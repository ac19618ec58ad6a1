package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/faultline/pkg/fault"
)

func newFaultCmd(_ *app) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "fault <message>",
		Short: "Raise a fault inside nested scopes",
		Long: `fault opens --depth nested scopes, each registering a cleanup, and
raises a fault from the innermost one. In unwind mode the cleanups run
innermost first; in abort mode none run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 1 {
				return fmt.Errorf("depth must be positive, got %d", depth)
			}
			out := cmd.OutOrStdout()
			nest(depth, func(level int) {
				fmt.Fprintf(out, "cleanup %d\n", level)
			}, func() {
				fault.Raise(args[0])
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 3, "Number of nested scopes")
	return cmd
}

func nest(depth int, cleanup func(level int), body func()) {
	var enter func(level int)
	enter = func(level int) {
		fault.Scoped(func(s *fault.Scope) {
			s.Defer(fmt.Sprintf("level %d", level), func() { cleanup(level) })
			if level == depth {
				body()
				return
			}
			enter(level + 1)
		})
	}
	enter(1)
}
