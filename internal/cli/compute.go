package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/looptrace"
)

func (a *app) newFarthestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "farthest [file...]",
		Short: "Print the distance along the loop to its farthest tile",
		Long: `Trace the loop through the start tile and print half its length, rounded
down: the number of steps from the start to the farthest loop tile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValues(cmd, args, "Farthest", pipeloop.Farthest)
		},
	}
}

func (a *app) newEnclosedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enclosed [file...]",
		Short: "Print the number of tiles enclosed by the loop",
		Long: `Trace the loop, infer the pipe under the start tile and count the tiles
the loop encloses, scanning each row for boundary crossings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runValues(cmd, args, "Enclosed", pipeloop.Enclosed)
		},
	}
}

func (a *app) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [file...]",
		Short: "Print a full report for each input",
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.config.GetString(formatConfigKey)
			if err := checkFormat(format); err != nil {
				return err
			}
			opts := a.traceOptions()
			results, err := runAll(cmd.Context(), a, args, cmd.InOrStdin(), func(buf []byte) (*pipeloop.Report, error) {
				return pipeloop.Analyze(buf, opts...)
			})
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), format, results)
		},
	}
}

// runValues drives the single-number commands.
func (a *app) runValues(cmd *cobra.Command, args []string, label string, compute func([]byte, ...looptrace.Option) (uint64, error)) error {
	format := a.config.GetString(formatConfigKey)
	if err := checkFormat(format); err != nil {
		return err
	}
	opts := a.traceOptions()
	results, err := runAll(cmd.Context(), a, args, cmd.InOrStdin(), func(buf []byte) (uint64, error) {
		return compute(buf, opts...)
	})
	if err != nil {
		return err
	}
	return writeValues(cmd.OutOrStdout(), format, label, results)
}
