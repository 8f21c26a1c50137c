package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cleanup.dev/pkg/cleanup/internal/adapter"
	"cleanup.dev/pkg/cleanup/internal/domain"
	m "cleanup.dev/pkg/cleanup/internal/model"
)

var errNothingToRemove = errors.New("nothing to remove: pass --comments, --console, --emojis or --all")

var (
	cleanCommentsFlag       bool
	cleanConsoleFlag        string
	cleanConsoleExcludeFlag []string
	cleanEmojisFlag         bool
	cleanAllFlag            bool
	cleanPreserveJSDocFlag  bool
	cleanPreserveLicFlag    bool
	cleanDryRunFlag         bool
	cleanDiffFlag           bool
	cleanNoCheckpointFlag   bool
	cleanRetentionFlag      int
	cleanParallelFlag       int
	cleanExtensionsFlag     []string
	cleanIgnoreFlag         []string
)

const cleanLongDescription = `Remove comments, console calls and/or emojis from every source file under
the project root.

Console selection accepts "all", "none" or a comma separated list of
methods (e.g. --console log,debug). Calls used as a value (arguments,
initializers, return values) are left in place and reported.

Unless --dry-run or --no-checkpoint is given, the files are copied into
.cleanup-checkpoints before anything is written.`

// cleanCmd represents the clean command.
var cleanCmd = newCleanCmd()

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove comments, console calls and emojis",
		Long:  cleanLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := resolveCleanArgs()
			if err != nil {
				return err
			}

			_, err = workflow.Clean(cmd.Context(), args)

			return err
		},
	}

	configureCleanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func configureCleanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolVarP(&cleanCommentsFlag, commentsFlagName, "c", defaultComments, "remove comments")
	bindFlagToConfig(flags.Lookup(commentsFlagName), commentsKey)

	flags.StringVar(&cleanConsoleFlag, consoleFlagName, defaultConsoleRemove, "console calls to remove: all, none or a comma separated method list")
	bindFlagToConfig(flags.Lookup(consoleFlagName), consoleRemoveKey)

	flags.StringSliceVar(&cleanConsoleExcludeFlag, consoleExcludeFlagName, nil, "console methods to keep (comma separated)")
	bindFlagToConfig(flags.Lookup(consoleExcludeFlagName), consoleExcludeKey)

	flags.BoolVarP(&cleanEmojisFlag, emojisFlagName, "e", defaultEmojis, "remove emojis")
	bindFlagToConfig(flags.Lookup(emojisFlagName), emojisKey)

	flags.BoolVarP(&cleanAllFlag, allFlagName, "a", false, "remove comments, every console call and emojis")

	flags.BoolVar(&cleanPreserveJSDocFlag, preserveJSDocFlagName, defaultPreserveJSDoc, "keep /** doc */ comments")
	bindFlagToConfig(flags.Lookup(preserveJSDocFlagName), preserveJSDocKey)

	flags.BoolVar(&cleanPreserveLicFlag, preserveLicFlagName, defaultPreserveLicense, "keep license and copyright comments")
	bindFlagToConfig(flags.Lookup(preserveLicFlagName), preserveLicenseKey)

	flags.BoolVar(&cleanDryRunFlag, dryRunFlagName, false, "report changes without writing files")
	bindFlagToConfig(flags.Lookup(dryRunFlagName), dryRunKey)

	flags.BoolVar(&cleanDiffFlag, diffFlagName, false, "print a unified diff for every changed file")
	bindFlagToConfig(flags.Lookup(diffFlagName), diffKey)

	flags.BoolVar(&cleanNoCheckpointFlag, noCheckpointFlagName, false, "do not snapshot files before writing")

	flags.IntVar(&cleanRetentionFlag, retentionFlagName, defaultRetention, "number of checkpoints to keep")
	bindFlagToConfig(flags.Lookup(retentionFlagName), retentionKey)

	flags.IntVarP(&cleanParallelFlag, parallelFlagName, "j", defaultParallel, "number of files processed in parallel")
	bindFlagToConfig(flags.Lookup(parallelFlagName), parallelKey)

	flags.StringSliceVar(&cleanExtensionsFlag, extensionsFlagName, adapter.DefaultExtensions, "file extensions to process")
	bindFlagToConfig(flags.Lookup(extensionsFlagName), extensionsKey)

	flags.StringArrayVarP(&cleanIgnoreFlag, ignoreFlagName, "x", nil, "gitignore-style pattern to skip (can be repeated)")
	bindFlagToConfig(flags.Lookup(ignoreFlagName), ignoreKey)
}

// resolveCleanArgs merges flags, environment and config file into the
// arguments of a run and rejects invalid combinations before any file I/O.
func resolveCleanArgs() (domain.CleanArgs, error) {
	policy := m.RemovalPolicy{
		Comments:        viper.GetBool(commentsKey),
		PreserveJSDoc:   viper.GetBool(preserveJSDocKey),
		PreserveLicense: viper.GetBool(preserveLicenseKey),
		Console:         consoleSelectionFromConfig(),
		ConsoleExclude:  splitListValues(viper.GetStringSlice(consoleExcludeKey)),
		Emojis:          viper.GetBool(emojisKey),
	}

	if cleanAllFlag {
		policy.Comments = true
		policy.Console = m.ConsoleSelection{Mode: m.ConsoleAll}
		policy.Emojis = true
	}

	if !policy.Comments && !policy.Emojis && !policy.RemovesCalls() {
		if err := policy.Validate(); err != nil {
			return domain.CleanArgs{}, err
		}

		return domain.CleanArgs{}, errNothingToRemove
	}

	cfg := runConfig{
		Root:       viper.GetString(pathKey),
		Extensions: splitListValues(viper.GetStringSlice(extensionsKey)),
		Retention:  viper.GetInt(retentionKey),
		Parallel:   viper.GetInt(parallelKey),
	}

	if err := cfg.validate(); err != nil {
		return domain.CleanArgs{}, err
	}

	if err := policy.Validate(); err != nil {
		return domain.CleanArgs{}, err
	}

	return domain.CleanArgs{
		Root:   m.Path(cfg.Root),
		Policy: policy,
		Files: adapter.DiscoverOptions{
			Extensions: cfg.Extensions,
			Ignore:     viper.GetStringSlice(ignoreKey),
		},
		Checkpoint: viper.GetBool(checkpointEnabledKey) && !cleanNoCheckpointFlag,
		Retention:  cfg.Retention,
		Parallel:   cfg.Parallel,
		DryRun:     viper.GetBool(dryRunKey),
		Diff:       viper.GetBool(diffKey),
	}, nil
}
