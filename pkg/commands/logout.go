package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/runner/logout"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "sign out and fall back to local storage",
		Example: `
streak logout
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := logout.Logout{Boot: boot}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
