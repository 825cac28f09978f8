package ui

import (
	"context"
	"errors"

	"tableflip.dev/streak/pkg/app"
	"tableflip.dev/streak/pkg/tui"
)

type UI struct {
	Boot *app.Bootstrap
}

func (n *UI) Do(ctx context.Context) error {
	if n.Boot == nil {
		return errors.New("can not open ui, no app")
	}
	return tui.Run(n.Boot)
}
