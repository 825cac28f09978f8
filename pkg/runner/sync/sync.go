package sync

import (
	"context"
	"errors"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

// Sync pulls the list from the session's storage target, shows it, and
// pushes it back so both sides converge on the same rows.
type Sync struct {
	ShowID bool

	Boot *app.Bootstrap
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not sync, no app")
	}
	n.Boot.Refresh(ctx)

	habits := n.Boot.Service.Store.GetAll()
	n.Boot.Service.Saver.Save(ctx, habits)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.TitleWithCount("Habits", len(habits))
	pp.Habits(habits...)
	return nil
}
