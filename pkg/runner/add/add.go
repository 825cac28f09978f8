package add

import (
	"context"
	"errors"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

type Add struct {
	Title       string
	Description string
	Color       string
	IconID      string
	ShowID      bool

	Boot *app.Bootstrap
}

func (n *Add) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not add, no app")
	}
	n.Boot.Refresh(ctx)

	if _, err := n.Boot.Service.AddHabit(ctx, n.Title, n.Description, n.Color, n.IconID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.TitleWithCount("Habits", n.Boot.Service.Store.Len())
	pp.Habits(n.Boot.Service.Store.GetAll()...)
	return nil
}
