// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// HabitOptions captures the habit attribute flags shared by add and edit.
type HabitOptions struct {
	Description string
	Color       string
	Icon        string
}

// AddHabitArgs wires habit attribute flags on the provided command.
func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the habit (required for add).")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Card color as #rrggbb, example: --color="#f9736f".`)
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Icon id from the icon catalog.")
}
