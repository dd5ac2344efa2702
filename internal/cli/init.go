package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

const pathFlagName = "path"

func (a *app) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default pipeloop.yaml configuration file",
		Long: `Create a pipeloop.yaml populated with the current CLI defaults so it can
be edited manually. An existing file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath, err := cmd.Flags().GetString(pathFlagName)
			if err != nil {
				return err
			}

			if err = a.config.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			a.logger.Info("wrote config", "path", targetPath)
			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}
	cmd.Flags().String(pathFlagName, filepath.Join(configFolderPath, configFileName), "where to write the configuration file")

	return cmd
}
