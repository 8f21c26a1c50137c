// Package cmd provides the root command and CLI setup for cleanup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/controller"
	"cleanup.dev/pkg/cleanup/internal/domain"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var checkpointStore adapter.CheckpointStore
var sourceParser adapter.SourceParser
var transformer domain.Transformer
var checkpoints domain.CheckpointManager
var workflow domain.Workflow
var ui controller.UI

// pathFlag is the project root shared by every command.
var pathFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	checkpointStore = adapter.NewLocalCheckpointStore()
	sourceParser = adapter.NewLocalSourceParser()

	var err error

	transformer, err = domain.NewTransformer(sourceParser, domain.TransformOptions{
		RetainLines: viper.GetBool(retainLinesKey),
	})
	cobra.CheckErr(err)

	checkpoints = domain.NewCheckpointManager(fsAdapter, checkpointStore)
	workflow = domain.NewWorkflow(
		fsAdapter,
		ui,
		transformer,
		checkpoints,
	)
}

const rootLongDescription = `cleanup removes comments, console calls and emojis from JavaScript and
TypeScript sources without changing what the code does.

Files are parsed, pruned and printed back; files that cannot be parsed fall
back to a text-level comment remover. Every run that writes files first
takes a checkpoint that can be restored with "cleanup restore".`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "cleanup",
		Short:        "Reversible comment, console and emoji removal for JS/TS",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command with its persistent flags, for tests.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&pathFlag, pathFlagName, "p", defaultPath, "project root directory")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(pathFlagName), pathKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func rootPath() m.Path {
	return m.Path(viper.GetString(pathKey))
}
