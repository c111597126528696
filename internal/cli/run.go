package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/mkprefix/api"
	"github.com/macropower/mkprefix/api/v1beta1/configs"
	"github.com/macropower/mkprefix/pkg/config"
	"github.com/macropower/mkprefix/pkg/diff"
	"github.com/macropower/mkprefix/pkg/fragment"
	"github.com/macropower/mkprefix/pkg/rewrite"
)

// ErrMissingLib is returned when neither --lib nor the project config name
// the library.
var ErrMissingLib = errors.New(`required flag "lib" not set`)

type RunArgs struct {
	*RootArgs

	Path         string
	Lib          string
	BackupSuffix string
	Prefix       string
	ConfigPath   string
	DryRun       bool
	Stdout       bool
	Explain      bool
	WriteConfig  bool
	ShowConfig   bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ra.Lib, "lib", "l", "", "Library base name, e.g. libgnu")
	cmd.Flags().StringVar(&ra.BackupSuffix, "backup-suffix", "",
		fmt.Sprintf("Suffix of the backup copy (default %q)", configs.DefaultBackupSuffix))
	cmd.Flags().StringVar(&ra.Prefix, "prefix", "", "Override the prefix derived from the fragment's directory")
	cmd.Flags().BoolVarP(&ra.DryRun, "dry-run", "n", false, "Print a diff of the changes without touching any file")
	cmd.Flags().BoolVar(&ra.Stdout, "stdout", false, "Print the rewritten fragment without touching any file")
	cmd.Flags().BoolVar(&ra.Explain, "explain", false, "Print how the fragment's lines are classified and exit")
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "",
		"Path to the mkprefix configuration file (default: search upward for .mkprefix.yaml)")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write a default configuration file and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	cmd.MarkFlagsMutuallyExclusive("dry-run", "stdout")

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	if ra.WriteConfig {
		return writeConfig(ra)
	}

	cfg, configPath, err := config.Resolve(ra.Path, ra.ConfigPath)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	// Flags and environment take precedence over the config file.
	if ra.Lib != "" {
		cfg.Library = ra.Lib
	}
	if ra.BackupSuffix != "" {
		cfg.BackupSuffix = ra.BackupSuffix
	}
	if ra.Prefix != "" {
		cfg.Prefix = ra.Prefix
	}

	err = cfg.Validate()
	if err != nil {
		return err //nolint:wrapcheck // Sentinel error.
	}

	if ra.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := cfg.MarshalYAML()
		if err != nil {
			return err //nolint:wrapcheck // Already wrapped.
		}

		_, err = cmd.OutOrStdout().Write(yamlBytes)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	if ra.Explain {
		return explain(cmd.OutOrStdout(), ra.Path)
	}

	if cfg.Library == "" {
		return ErrMissingLib
	}

	res, err := fragment.Rewrite(cmd.Context(), ra.Path, cfg.Library,
		fragment.WithPrefix(prefixOrDerived(cfg.Prefix, ra.Path)),
		fragment.WithBackupSuffix(cfg.BackupSuffix),
		fragment.WithDryRun(ra.DryRun || ra.Stdout),
	)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped.
	}

	switch {
	case ra.Stdout:
		_, err = io.WriteString(cmd.OutOrStdout(), res.Rewritten)
		if err != nil {
			return fmt.Errorf("write to stdout: %w", err)
		}

	case ra.DryRun:
		return printDiff(cmd.OutOrStdout(), res)
	}

	return nil
}

func prefixOrDerived(prefix, path string) string {
	if prefix != "" {
		return prefix
	}

	return fragment.Prefix(path)
}

func writeConfig(ra *RunArgs) error {
	path := ra.ConfigPath
	if path == "" {
		dir := ra.Path
		info, err := os.Stat(ra.Path)
		if err != nil || !info.IsDir() {
			dir = filepath.Dir(ra.Path)
		}

		path = filepath.Join(dir, configs.FileNames[0])
	}

	return configs.WriteDefault(path, false) //nolint:wrapcheck // Already wrapped.
}

func explain(w io.Writer, path string) error {
	data, err := api.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", fragment.ErrRead, path, err)
	}

	s := rewrite.Summarize(string(data))

	_, err = fmt.Fprintf(w, "%s: %d lines\n  %-12s %d\n  %-12s %d\n  %-12s %d\n  %-12s %d\n",
		path, s.Total(),
		rewrite.KindRule.String(), s.Rules,
		rewrite.KindAssignment.String(), s.Assignments,
		"continued", s.Continued,
		rewrite.KindOther.String(), s.Other,
	)
	if err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

func printDiff(w io.Writer, res *fragment.Result) error {
	unified := diff.Unified(filepath.ToSlash(res.Path), res.Original, res.Rewritten)

	added, removed := diff.Stat(unified)
	slog.Info("dry run",
		slog.String("path", res.Path),
		slog.Int("added", added),
		slog.Int("removed", removed),
	)

	if unified == "" {
		return nil
	}

	err := diff.NewRenderer(colorProfile(w)).Render(w, unified)
	if err != nil {
		// Fall back to the plain diff.
		_, err = io.WriteString(w, unified)
		if err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	if !strings.HasSuffix(unified, "\n") {
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return fmt.Errorf("write diff: %w", err)
		}
	}

	return nil
}

// colorProfile returns the color profile of w when it is a terminal, and
// [termenv.Ascii] otherwise.
func colorProfile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // G115: fd fits in int.
		return termenv.Ascii
	}

	return termenv.NewOutput(f).ColorProfile()
}
