package done

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

type Done struct {
	Ref    string
	Day    string
	ShowID bool

	Boot *app.Bootstrap
}

func (n *Done) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not complete, no app")
	}
	n.Boot.Refresh(ctx)

	h, ok := n.Boot.Service.ResolveHabit(n.Ref)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	patch, ok := n.Boot.Service.ToggleCompletion(ctx, h.ID, n.Day)
	if !ok {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()
	if patch.Completed {
		pp.Title(fmt.Sprintf("%s · %s done", h.Title, patch.Day))
	} else {
		pp.Title(fmt.Sprintf("%s · %s cleared", h.Title, patch.Day))
	}
	pp.YearGrid(time.Now(), h)
	return nil
}
