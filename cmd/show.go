package cmd

import (
	"github.com/spf13/cobra"

	"cleanup.dev/pkg/cleanup/internal/domain"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <checkpoint-id>",
		Short: "Show the details of a checkpoint",
		Long:  "Print the metadata of a checkpoint: its files and the options of the run that created it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Show(cmd.Context(), domain.ShowArgs{Root: rootPath(), ID: args[0]})
			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}
