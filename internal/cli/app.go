// Package cli contains the cargo-complete commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/git-pkgs/completions/internal/config"
	"github.com/git-pkgs/completions/internal/core"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	_ "github.com/git-pkgs/completions/all"
)

type (
	// App wires the index, configuration and output streams for the commands.
	App struct {
		fs        afero.Fs
		configDir string
		stdout    io.Writer
		stderr    io.Writer
		logger    *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		FS        afero.Fs
		ConfigDir string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// globalFlags are the persistent flags shared by every command.
	globalFlags struct {
		configFile string
		index      string
		ecosystem  string
		logLevel   string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.FS == nil {
		deps.FS = afero.NewReadOnlyFs(afero.NewOsFs())
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		fs:        deps.FS,
		configDir: deps.ConfigDir,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: config.AppName,
			Level:  log.ErrorLevel,
		}),
	}
}

// loadConfig merges the config file and environment with explicit flags.
func (a *App) loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFilePath: flags.configFile,
		ConfigDirPath:  a.configDir,
	})
	if err != nil {
		return nil, err
	}

	if flags.index != "" {
		cfg.Index = flags.index
	}
	if flags.ecosystem != "" {
		cfg.Ecosystem = flags.ecosystem
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		a.logger.Warn("unknown log level, using error", "level", cfg.LogLevel)
		level = log.ErrorLevel
	}
	a.logger.SetLevel(level)

	return cfg, nil
}

// indexRoot loads the configuration and resolves the index root.
func (a *App) indexRoot(flags *globalFlags) (*config.Config, string, error) {
	cfg, err := a.loadConfig(flags)
	if err != nil {
		return nil, "", err
	}

	root, err := config.IndexRoot(a.fs, cfg)
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

// openIndex opens the configured index.
func (a *App) openIndex(flags *globalFlags) (core.Index, error) {
	cfg, root, err := a.indexRoot(flags)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opening index", "ecosystem", cfg.Ecosystem, "root", root)

	return core.New(cfg.Ecosystem, root, a.fs)
}

// openQuery splits input into a name and version and opens the index it
// refers to. A package URL selects its own ecosystem; anything else uses
// the configured one.
func (a *App) openQuery(flags *globalFlags, input string) (core.Index, core.Query, error) {
	if !core.IsPURL(input) {
		query, err := core.ParseQuery(input)
		if err != nil {
			return nil, core.Query{}, err
		}
		idx, err := a.openIndex(flags)
		return idx, query, err
	}

	_, root, err := a.indexRoot(flags)
	if err != nil {
		return nil, core.Query{}, err
	}
	idx, name, version, err := core.NewFromPURL(input, root, a.fs)
	if err != nil {
		return nil, core.Query{}, err
	}
	a.logger.Debug("opening index", "ecosystem", idx.Ecosystem(), "root", root)

	return idx, core.Query{Ecosystem: idx.Ecosystem(), Name: name, Version: version}, nil
}

// swallowFlagErrors makes a completion command treat unparsable flags as
// an empty answer.
func (a *App) swallowFlagErrors(cmd *cobra.Command) {
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		a.logger.Debug("ignoring bad arguments", "command", c.Name(), "err", err)
		return nil
	})
}

// printLines writes one entry per line. Nothing is written for no entries.
func (a *App) printLines(lines []string) {
	if len(lines) == 0 {
		return
	}
	_, _ = fmt.Fprintln(a.stdout, strings.Join(lines, "\n"))
}
