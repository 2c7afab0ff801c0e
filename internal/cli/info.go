package cli

import (
	"fmt"
	"strings"

	"github.com/git-pkgs/completions/internal/complete"
	"github.com/spf13/cobra"
)

// infoURLKeys fixes the order URLs are printed in.
var infoURLKeys = []string{"registry", "docs", "download", "purl"}

func newInfoCommand(app *App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info NAME",
		Short: "Show the latest release of a crate",
		Long: `Show the highest non-yanked release of NAME with its features and
links. Unlike the completion commands, errors are reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, query, err := app.openQuery(flags, args[0])
			if err != nil {
				return err
			}

			info, err := complete.PackageInfo(idx, query.Name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", info.Release.Name, info.Release.Version)
			if len(info.Features) > 0 {
				fmt.Fprintf(out, "features: %s\n", strings.Join(info.Features, ", "))
			}
			if info.Release.RustVersion != "" {
				fmt.Fprintf(out, "rust-version: %s\n", info.Release.RustVersion)
			}
			if info.Release.Checksum != "" {
				fmt.Fprintf(out, "integrity: sha256-%s\n", info.Release.Checksum)
			}
			for _, key := range infoURLKeys {
				if u, ok := info.URLs[key]; ok {
					fmt.Fprintf(out, "%s: %s\n", key, u)
				}
			}
			return nil
		},
	}
}
