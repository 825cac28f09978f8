package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/habit"
	"tableflip.dev/streak/pkg/printers"
)

type Edit struct {
	Ref    string
	Patch  habit.Patch
	ShowID bool

	Boot *app.Bootstrap
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not edit, no app")
	}
	n.Boot.Refresh(ctx)

	h, ok := n.Boot.Service.ResolveHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	if err := n.Boot.Service.EditHabit(ctx, h.ID, n.Patch); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	pp.TitleWithCount("Habits", n.Boot.Service.Store.Len())
	pp.Habits(n.Boot.Service.Store.GetAll()...)
	return nil
}
