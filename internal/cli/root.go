package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/mkprefix/pkg/log"
)

const (
	cmdName = "mkprefix"
	cmdDesc = `Rewrite a generated automake fragment so it can be included from its parent directory.`

	cmdExamples = `  # Rewrite lib/Makefile.am in place, keeping lib/Makefile.am.bak:
  mkprefix --lib libgnu lib/Makefile.am

  # Show what would change:
  mkprefix --lib libgnu --dry-run lib/Makefile.am

  # Print the rewritten fragment instead of writing it:
  mkprefix --lib libgnu --stdout lib/Makefile.am > lib/gnulib.mk

  # Use the library name from .mkprefix.yaml:
  mkprefix lib/Makefile.am

  # Write a default .mkprefix.yaml next to the fragment:
  mkprefix --write-config lib/Makefile.am`
)

type RootArgs struct {
	LogLevel  string
	LogFormat string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	runArgs := NewRunArgs(args)

	cmd := &cobra.Command{
		Use:               cmdName + " [flags] <file>",
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []cobra.Completion{"am", "mk"}, cobra.ShellCompDirectiveFilterFileExt
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runArgs.Path = args[0]

			return run(cmd, runArgs)
		},
		SilenceUsage: true,
	}

	args.AddFlags(cmd)
	runArgs.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(rc *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), rc.LogLevel, rc.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		logger := slog.New(logHandler)
		slog.SetDefault(logger)
		cmd.SetContext(log.NewContext(cmd.Context(), logger))

		return nil
	}
}
