// Package fragment rewrites generated automake fragments on disk.
//
// A fragment such as lib/Makefile.am is read, moved aside to a backup copy,
// rewritten with [rewrite.Transform] and written back in place, so that it
// can be included from a parent Makefile.am.
package fragment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/macropower/mkprefix/api"
	"github.com/macropower/mkprefix/pkg/log"
	"github.com/macropower/mkprefix/pkg/rewrite"
)

// DefaultBackupSuffix is appended to the fragment path to name the backup.
const DefaultBackupSuffix = ".bak"

var (
	ErrRead   = errors.New("read fragment")
	ErrBackup = errors.New("back up fragment")
	ErrWrite  = errors.New("write fragment")
)

// Result describes a single fragment rewrite.
type Result struct {
	// Path is the fragment that was rewritten.
	Path string
	// BackupPath holds the original content. Empty for dry runs.
	BackupPath string
	// Prefix is the prefix applied to every path word.
	Prefix    string
	Original  string
	Rewritten string
}

// Changed reports whether the rewrite altered the content.
func (r *Result) Changed() bool {
	return r.Original != r.Rewritten
}

// Opt configures [Rewrite].
type Opt func(*options)

type options struct {
	backupSuffix string
	prefix       string
	dryRun       bool
}

// WithBackupSuffix sets the suffix used to name the backup copy.
func WithBackupSuffix(suffix string) Opt {
	return func(o *options) {
		if suffix != "" {
			o.backupSuffix = suffix
		}
	}
}

// WithDryRun computes the rewrite without renaming or writing any file.
func WithDryRun(dryRun bool) Opt {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithPrefix overrides the prefix derived by [Prefix].
func WithPrefix(prefix string) Opt {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Prefix returns the directory part of the fragment path followed by a
// slash, e.g. "lib/" for "lib/Makefile.am". Separators are always "/" since
// the result ends up in a Makefile.
func Prefix(fragmentPath string) string {
	return path.Dir(filepath.ToSlash(fragmentPath)) + "/"
}

// Rewrite reads the fragment at fragmentPath, renames it to the backup path
// and writes the transformed content back to fragmentPath with the original
// file mode. If the write fails the backup still holds the original content.
func Rewrite(ctx context.Context, fragmentPath, libName string, opts ...Opt) (*Result, error) {
	o := &options{
		backupSuffix: DefaultBackupSuffix,
		prefix:       Prefix(fragmentPath),
	}
	for _, opt := range opts {
		opt(o)
	}

	logger := log.WithContext(ctx).With(slog.String("path", fragmentPath))

	info, err := os.Stat(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, fragmentPath, err)
	}

	data, err := api.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRead, fragmentPath, err)
	}

	logger.Debug("read fragment", slog.String("size", humanize.Bytes(uint64(len(data)))))

	res := &Result{
		Path:      fragmentPath,
		Prefix:    o.prefix,
		Original:  string(data),
		Rewritten: rewrite.Transform(string(data), o.prefix, libName),
	}

	if o.dryRun {
		logger.Debug("dry run, leaving fragment untouched")

		return res, nil
	}

	backupPath := fragmentPath + o.backupSuffix

	err = os.Rename(fragmentPath, backupPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackup, fragmentPath, err)
	}

	res.BackupPath = backupPath

	logger.Debug("backed up fragment", slog.String("backup", backupPath))

	err = os.WriteFile(fragmentPath, []byte(res.Rewritten), info.Mode().Perm())
	if err != nil {
		return res, fmt.Errorf("%w: %s: %w", ErrWrite, fragmentPath, err)
	}

	logger.Info("rewrote fragment",
		slog.String("prefix", res.Prefix),
		slog.Bool("changed", res.Changed()),
		slog.String("size", humanize.Bytes(uint64(len(res.Rewritten)))),
	)

	return res, nil
}
