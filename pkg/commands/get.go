package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	grid := false

	cmd := &cobra.Command{
		Use:   "get [habit]",
		Short: "get habits",
		Long:  "Get the habit list, or one habit's full-year grid by id or title prefix.",
		Example: `
streak get
streak get --grid
streak get read
streak get --json
`,
		RunE: func(_ *cobra.Command, args []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := get.Get{
				Ref:    strings.Join(args, " "),
				ShowID: io.ShowID,
				JSON:   oo.JSON,
				Grid:   grid,
				Boot:   boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&grid, "grid", false, "Show each habit's year grid.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
