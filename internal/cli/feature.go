package cli

import (
	"github.com/git-pkgs/completions/internal/complete"
	"github.com/spf13/cobra"
)

func newFeatureCommand(app *App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feature NAME[@VERSION]",
		Short: "List the features of a crate release",
		Long: `List the features declared by the last release of NAME whose version
starts with VERSION. Without a version the last release is used. The input
may also be a package URL such as pkg:cargo/serde@1.0.`,
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
			app.printLines(app.completeFeature(flags, args[0]))
			return nil
		},
	}
	app.swallowFlagErrors(cmd)
	return cmd
}

// completeFeature returns the features for input, or nothing on any error.
func (a *App) completeFeature(flags *globalFlags, input string) []string {
	idx, query, err := a.openQuery(flags, input)
	if err != nil {
		a.logger.Debug("feature completion failed", "input", input, "err", err)
		return nil
	}

	features, err := complete.Feature(idx, query.Name, query.Version)
	if err != nil {
		a.logger.Debug("feature completion failed", "input", input, "err", err)
		return nil
	}
	return features
}
