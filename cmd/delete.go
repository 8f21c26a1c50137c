package cmd

import (
	"github.com/spf13/cobra"

	"cleanup.dev/pkg/cleanup/internal/domain"
)

// deleteCmd represents the delete command.
var deleteCmd = newDeleteCmd()

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <checkpoint-id>",
		Short: "Delete a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Delete(cmd.Context(), domain.DeleteArgs{Root: rootPath(), ID: args[0]})
		},
	}
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
