package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a habit",
		Example: `
streak add "Read" --description "20 minutes a day" --icon book
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Title:       title,
				Description: ho.Description,
				Color:       ho.Color,
				IconID:      ho.Icon,
				ShowID:      io.ShowID,
				Boot:        boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
