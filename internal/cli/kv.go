package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/faultline/pkg/fault"
	"github.com/ib-77/faultline/pkg/resource/kv"
	"github.com/ib-77/faultline/pkg/rop"
)

func newKVCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kv",
		Short: "Read and write a bolt key/value file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get <db> <bucket> <key>",
			Short: "Print the value stored under key",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				r := withStore(a, args[0], func(f *rop.Frame[*commandError], s *kv.Store) []byte {
					return rop.TryFrom(f, s.Get(args[1], args[2]))
				})
				value := r.Expect("cannot get " + args[1] + "/" + args[2])
				_, err := cmd.OutOrStdout().Write(append(value, '\n'))
				return err
			},
		},
		&cobra.Command{
			Use:   "put <db> <bucket> <key> <value>",
			Short: "Store value under key",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				r := withStore(a, args[0], func(f *rop.Frame[*commandError], s *kv.Store) rop.Unit {
					return rop.TryFrom(f, s.Put(args[1], args[2], []byte(args[3])))
				})
				r.Expect("cannot put " + args[1] + "/" + args[2])
				pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("stored %s/%s", args[1], args[2])
				return nil
			},
		},
		&cobra.Command{
			Use:   "del <db> <bucket> <key>",
			Short: "Delete key",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				r := withStore(a, args[0], func(f *rop.Frame[*commandError], s *kv.Store) rop.Unit {
					return rop.TryFrom(f, s.Delete(args[1], args[2]))
				})
				r.Expect("cannot delete " + args[1] + "/" + args[2])
				pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("deleted %s/%s", args[1], args[2])
				return nil
			},
		},
	)
	return cmd
}

// withStore opens path, runs fn and closes the store on every exit path.
func withStore[T any](a *app, path string, fn func(f *rop.Frame[*commandError], s *kv.Store) T) rop.Result[T, *commandError] {
	return rop.DoWith(commandErrors, func(f *rop.Frame[*commandError]) rop.Result[T, *commandError] {
		store := rop.TryFrom(f, kv.Open(path, a.cfg.storeOptions()))

		var out T
		fault.Scoped(func(sc *fault.Scope) {
			sc.Defer("close "+path, func() {
				if err, failed := store.Close().Failure(); failed {
					a.logger.Error("close store", zap.Error(err))
				}
			})
			out = fn(f, store)
		})
		return rop.Success[T, *commandError](out)
	})
}
