package cmd

import (
	"github.com/spf13/cobra"

	"cleanup.dev/pkg/cleanup/internal/domain"
)

// restoreCmd represents the restore command.
var restoreCmd = newRestoreCmd()

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [checkpoint-id]",
		Short: "Restore files from a checkpoint",
		Long: `Copy the files of a checkpoint back into the project. Without an id the
checkpoint is picked interactively (terminal only).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			restoreArgs := domain.RestoreArgs{Root: rootPath()}
			if len(args) == 1 {
				restoreArgs.ID = args[0]
			}

			_, err := workflow.Restore(cmd.Context(), restoreArgs)

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
