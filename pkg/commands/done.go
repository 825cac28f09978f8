package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	on := &options.OnOptions{}
	ref := ""

	cmd := &cobra.Command{
		Use:     "done <habit>",
		Aliases: []string{"toggle", "tick"},
		Short:   "toggle a habit's completion for a day",
		Example: `
streak done read
streak done read --on="2026-02-28"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit id or title prefix")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := on.GetOn()
			if err != nil {
				return err
			}
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := done.Done{
				Ref:    ref,
				Day:    day,
				ShowID: io.ShowID,
				Boot:   boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
