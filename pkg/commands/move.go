package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ref := ""
	index := 0

	cmd := &cobra.Command{
		Use:   "move <habit> <index>",
		Short: "move a habit to a new position",
		Example: `
streak move read 0
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a habit and a target index")
			}
			ref = args[0]
			var err error
			index, err = strconv.Atoi(args[1])
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := move.Move{
				Ref:    ref,
				Index:  index,
				ShowID: io.ShowID,
				Boot:   boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
