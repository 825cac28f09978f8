package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/streak/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "streak",
		Short: base.Wrap80("Daily habit tracking on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addDone(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addRemove(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addSync(topLevel)
	addIcons(topLevel)
	addVersion(topLevel)
}
