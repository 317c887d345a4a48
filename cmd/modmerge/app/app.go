// Package app provides the application context and command wiring for the
// modmerge CLI. Configuration, logging, and command construction live here;
// merge semantics stay in pkg/merge.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/modsmith/modmerge/pkg/logging"
)

// App represents the modmerge CLI application with its dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(config)
	logging.SetDefault(logger)

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  &logger,
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Execute runs the modmerge CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "modmerge",
		Short:   "Mod manifest reconciliation CLI",
		Version: fmt.Sprintf("%s (commit %s, built %s)", a.version, a.commit, a.date),
		Long: `Modmerge reconciles two mod-installation manifests — an existing local
manifest and an incoming update — into one coherent list, preserving user
customizations alongside upstream author changes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.modmerge.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(a.newMergeCommand())
	rootCmd.AddCommand(a.newStrategiesCommand())

	return rootCmd
}

// NewLogger builds the application logger from configuration.
func NewLogger(cfg *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || cfg.LogLevel == "" {
		level = zerolog.InfoLevel
	}

	logger := logging.NewConsole().Level(level)
	if cfg.LogFormat == "json" {
		logger = logging.New(os.Stderr).Level(level)
	}
	return logger
}

// ExitOnError prints the error to stderr and exits with status 1.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
