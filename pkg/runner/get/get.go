package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/printers"
)

type Get struct {
	Ref    string
	ShowID bool
	JSON   bool
	Grid   bool

	Boot *app.Bootstrap
}

func (n *Get) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not get, no app")
	}
	n.Boot.Refresh(ctx)
	habits := n.Boot.Service.Store.GetAll()

	if n.JSON {
		b, err := json.MarshalIndent(habits, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Icons: n.Boot.Icons}
	pp.NewLine()

	if n.Ref != "" {
		h, ok := n.Boot.Service.ResolveHabit(n.Ref)
		if !ok {
			return fmt.Errorf("no habit matches %q", n.Ref)
		}
		pp.YearGrid(time.Now(), h)
		return nil
	}

	pp.TitleWithCount("Habits", len(habits))
	pp.Habits(habits...)

	if n.Grid {
		now := time.Now()
		for _, h := range habits {
			pp.YearGrid(now, h)
		}
	}
	return nil
}
