package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

type Move struct {
	Ref    string
	Index  int
	ShowID bool

	Boot *app.Bootstrap
}

func (n *Move) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not move, no app")
	}
	n.Boot.Refresh(ctx)

	h, ok := n.Boot.Service.ResolveHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	n.Boot.Service.MoveHabit(ctx, h.ID, n.Index)

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.TitleWithCount("Habits", n.Boot.Service.Store.Len())
	pp.Habits(n.Boot.Service.Store.GetAll()...)
	return nil
}
