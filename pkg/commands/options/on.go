package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/streak/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify the day to toggle, example: --on="2026-02-28". Defaults to today.`)
}

// GetOn validates and returns the day key, empty meaning today.
func (o *OnOptions) GetOn() (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	if _, err := timeutil.ParseDay(o.OnString); err != nil {
		return "", err
	}
	return o.OnString, nil
}
