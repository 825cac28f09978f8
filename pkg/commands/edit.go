package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	io := &options.IDOptions{}
	title := ""
	ref := ""

	cmd := &cobra.Command{
		Use:   "edit <habit>",
		Short: "edit a habit",
		Example: `
streak edit read --title "Read more" --color "#336699"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit id or title prefix")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}

			// Only flags the user passed become part of the patch.
			p := habit.Patch{}
			if cmd.Flags().Changed("title") {
				p.Title = &title
			}
			if cmd.Flags().Changed("description") {
				p.Description = &ho.Description
			}
			if cmd.Flags().Changed("color") {
				p.Color = &ho.Color
			}
			if cmd.Flags().Changed("icon") {
				p.IconID = &ho.Icon
			}

			s := edit.Edit{
				Ref:    ref,
				Patch:  p,
				ShowID: io.ShowID,
				Boot:   boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New habit title.")
	options.AddHabitArgs(cmd, ho)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
