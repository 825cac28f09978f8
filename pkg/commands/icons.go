package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/runner/icons"
)

func addIcons(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "list the available habit icons",
		Example: `
streak icons
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := icons.Icons{Boot: boot}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
