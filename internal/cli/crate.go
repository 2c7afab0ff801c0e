package cli

import (
	"github.com/git-pkgs/completions/internal/complete"
	"github.com/spf13/cobra"
)

func newCrateCommand(app *App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crate NAME[@VERSION]",
		Short: "Complete a crate name or name@version",
		Long: `Complete a partial crate name, treating '-' and '_' as the same
character, or complete the version after '@' to releases that are not
yanked, newest first. With several comma-separated requirements only the
last one is completed.`,
		Args: cobra.ArbitraryArgs,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return app.completeCrate(flags, toComplete), cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			app.printLines(app.completeCrate(flags, args[0]))
			return nil
		},
	}
	app.swallowFlagErrors(cmd)
	return cmd
}

// completeCrate returns the candidates for input, or nothing on any error.
func (a *App) completeCrate(flags *globalFlags, input string) []string {
	idx, err := a.openIndex(flags)
	if err != nil {
		a.logger.Debug("crate completion failed", "input", input, "err", err)
		return nil
	}

	candidates, err := complete.Package(idx, input)
	if err != nil {
		a.logger.Debug("crate completion failed", "input", input, "err", err)
		return nil
	}
	return candidates
}
