// Package icons provides the CLI helper that displays the icon legend.
package icons

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/streak/pkg/app"
)

// Icons prints the icon catalog, builtins plus any overrides installed
// beside the habit list.
type Icons struct {
	Boot *app.Bootstrap
}

func (k *Icons) Do(ctx context.Context) error {
	if k.Boot == nil {
		return errors.New("can not list icons, no app")
	}

	_, _ = fmt.Fprintln(color.Output, "")

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Icon"), bold.Sprint("ID"), bold.Sprint("Meaning"))
	for _, ic := range k.Boot.Icons.All() {
		tbl.AddRow(ic.Symbol, ic.ID, ic.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
