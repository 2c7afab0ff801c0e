package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
)

// NewRootCommand builds the command tree for app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "cargo-complete",
		Short: "Shell completions for crate names, versions and features",
		Long: `cargo-complete reads the local crates.io index and prints completion
candidates, one per line.

Completion commands never fail: on any error they print nothing and exit 0.

Examples:
  cargo-complete crate tracing_te      tracing-test, tracing-test-macro
  cargo-complete crate actix-web@3     actix-web@3.3.3, actix-web@3.3.2, ...
  cargo-complete feature tokio@1       bytes, fs, full, io-std, ...
  cargo-complete info serde            latest release, features and links`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/cargo-complete/config.toml)")
	rootCmd.PersistentFlags().StringVar(&flags.index, "index", "", "index root directory (default is the first index under $CARGO_HOME/registry/index)")
	rootCmd.PersistentFlags().StringVar(&flags.ecosystem, "ecosystem", "", "index ecosystem (default cargo)")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newCrateCommand(app, flags))
	rootCmd.AddCommand(newFeatureCommand(app, flags))
	rootCmd.AddCommand(newInfoCommand(app, flags))

	return rootCmd
}

// Execute runs the CLI with production dependencies and returns the exit code.
func Execute(args []string) int {
	rootCmd := NewRootCommand(NewApp(Dependencies{}))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
