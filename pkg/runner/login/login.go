package login

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

type Login struct {
	Token  string
	ShowID bool

	Boot *app.Bootstrap
}

// Do stores the session and hydrates from the remote account, so the
// first thing a signed-in user sees is their server-side list.
func (n *Login) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not login, no app")
	}

	s, err := n.Boot.Auth.SignIn(n.Token)
	if err != nil {
		return err
	}

	who := s.Email
	if who == "" {
		who = s.UserID
	}
	_, _ = fmt.Fprintf(color.Output, "signed in as %s\n", who)

	n.Boot.Refresh(ctx)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.TitleWithCount("Habits", n.Boot.Service.Store.Len())
	pp.Habits(n.Boot.Service.Store.GetAll()...)
	return nil
}
