package config

import (
	"fmt"
	"log/slog"

	"github.com/macropower/mkprefix/api/v1beta1/configs"
)

// Resolve loads the configuration for the fragment at fragmentPath.
//
// If explicitPath is set it must exist. Otherwise the directory tree above
// the fragment is searched for one of [configs.FileNames]; when none is
// found the defaults from [configs.New] are returned with an empty path.
func Resolve(fragmentPath, explicitPath string) (*configs.Config, string, error) {
	path := explicitPath
	if path == "" {
		found, err := configs.Find(fragmentPath)
		if err != nil {
			return nil, "", err //nolint:wrapcheck // Already wrapped.
		}

		if found == "" {
			slog.Debug("no config file found, using defaults",
				slog.String("fragment", fragmentPath),
			)

			return configs.New(), "", nil
		}

		path = found
	}

	cl, err := NewLoaderFromFile(path, configs.New, configs.DefaultValidator)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := cl.ValidateAndLoad()
	if err != nil {
		return nil, path, fmt.Errorf("invalid config %q: %w", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, path, fmt.Errorf("invalid config %q: %w", path, err)
	}

	slog.Debug("loaded config", slog.String("path", path))

	return cfg, path, nil
}
