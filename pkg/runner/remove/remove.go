package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

// Remove deletes a habit immediately. The undo grace period is a
// full-screen affordance; on the command line the removal is final.
type Remove struct {
	Ref    string
	ShowID bool

	Boot *app.Bootstrap
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not remove, no app")
	}
	n.Boot.Refresh(ctx)

	h, ok := n.Boot.Service.ResolveHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	if !n.Boot.Service.RemoveHabit(ctx, h.ID) {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.Title(fmt.Sprintf("removed %s", h.Title))
	pp.TitleWithCount("Habits", n.Boot.Service.Store.Len())
	pp.Habits(n.Boot.Service.Store.GetAll()...)
	return nil
}
