package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the habit stack",
		Example: `
streak ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			i := ui.UI{Boot: boot}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
