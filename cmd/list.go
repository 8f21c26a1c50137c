package cmd

import (
	"github.com/spf13/cobra"

	"cleanup.dev/pkg/cleanup/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List checkpoints, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := workflow.List(cmd.Context(), domain.ListArgs{Root: rootPath()})
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
