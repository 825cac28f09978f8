package logout

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/streak/pkg/app"
)

type Logout struct {
	Boot *app.Bootstrap
}

// Do clears the session; the next read falls back to local storage.
func (n *Logout) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not logout, no app")
	}
	if err := n.Boot.Auth.SignOut(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, "signed out")
	return nil
}
