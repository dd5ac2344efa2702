// Package cli provides the pipeloop command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const rootLongDescription = `pipeloop analyzes a grid of pipe tiles that forms one closed loop through
a start tile 'S'. It reports how far along the loop the farthest tile is and
how many tiles the loop encloses.

Inputs are files; "-" or no argument reads standard input.`

// app carries the state shared by every command of one invocation.
type app struct {
	config    *viper.Viper
	logger    *slog.Logger
	logCloser io.Closer
}

// newRootCmd builds a fresh command tree with its own configuration.
// The returned app must be closed once the command has run.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	v, err := newConfig()
	cobra.CheckErr(err)
	a.config = v

	cmd := &cobra.Command{
		Use:           "pipeloop",
		Short:         "Pipe loop analyzer",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			a.logger, a.logCloser = newLogger(a.config)
			slog.SetDefault(a.logger)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	a.configureRootFlags(cmd)

	cmd.AddCommand(
		a.newFarthestCmd(),
		a.newEnclosedCmd(),
		a.newAnalyzeCmd(),
		a.newRenderCmd(),
		a.newInitCmd(),
		newVersionCmd(),
	)

	return cmd, a
}

func (a *app) configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(formatFlagName, "f", a.config.GetString(formatConfigKey), "output format: text, table, json or yaml")
	a.bindFlagToConfig(flags.Lookup(formatFlagName), formatConfigKey)

	flags.IntP(parallelFlagName, "p", a.config.GetInt(parallelConfigKey), "number of inputs analyzed concurrently")
	a.bindFlagToConfig(flags.Lookup(parallelFlagName), parallelConfigKey)

	flags.Bool(verifyFlagName, a.config.GetBool(verifyConfigKey), "trace the loop in both directions and compare")
	a.bindFlagToConfig(flags.Lookup(verifyFlagName), verifyConfigKey)

	flags.String(logFileFlagName, a.config.GetString(logFilenameKey), "log file path")
	a.bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolP(verboseFlagName, "v", a.config.GetBool(logVerboseKey), "log at debug level")
	a.bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func (a *app) bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(a.config.BindPFlag(key, flag))
}

func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// Execute runs the command tree against os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	cmd, a := newRootCmd()
	err := cmd.Execute()
	_ = a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
