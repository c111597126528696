package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags that never read from the environment.
var envIgnoredFlags = map[string]bool{
	"help":    true,
	"version": true,
}

// bindEnvVars sets every flag of cmd from its MKPREFIX_<FLAG_NAME>
// environment variable, e.g. "backup-suffix" from MKPREFIX_BACKUP_SUFFIX.
//
// It must run before the arguments are parsed: values given on the command
// line then overwrite the environment, which overwrites the defaults. The
// variable name is appended to each flag's usage so it shows up in --help.
func bindEnvVars(cmd *cobra.Command) {
	bindFlagSet(cmd.Flags(), os.LookupEnv)
	bindFlagSet(cmd.PersistentFlags(), os.LookupEnv)
}

func bindFlagSet(fs *pflag.FlagSet, lookup func(string) (string, bool)) {
	fs.VisitAll(func(flag *pflag.Flag) {
		if envIgnoredFlags[flag.Name] {
			return
		}

		envName := flagToEnvName(flag.Name)
		if !strings.Contains(flag.Usage, envName) {
			flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
		}

		if flag.Changed {
			return
		}

		value, ok := lookup(envName)
		if !ok {
			return
		}

		err := flag.Value.Set(value)
		if err != nil {
			// Keep the default.
			slog.Error("invalid environment variable",
				slog.String("flag", flag.Name),
				slog.String("env", envName),
				slog.String("value", value),
				slog.Any("err", err),
			)
		}
	})
}

// flagToEnvName converts a flag name to its environment variable name.
func flagToEnvName(flagName string) string {
	return strings.ToUpper(cmdName + "_" + strings.ReplaceAll(flagName, "-", "_"))
}
