package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/commands/options"
	"tableflip.dev/streak/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	token := ""

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in with an access token",
		Long:  "Sign in with a backend-issued access token. Saves switch to the remote account until logout.",
		Example: `
streak login --token "$STREAK_TOKEN"
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if token == "" {
				return errors.New("requires --token")
			}
			boot, err := app.Load(context.Background(), nil)
			if err != nil {
				return err
			}
			s := login.Login{
				Token:  token,
				ShowID: io.ShowID,
				Boot:   boot,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Access token issued by the remote backend.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
