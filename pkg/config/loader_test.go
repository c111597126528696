package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/mkprefix/api/v1beta1/configs"
	"github.com/macropower/mkprefix/pkg/config"
	"github.com/macropower/mkprefix/pkg/yaml"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".mkprefix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewLoaderFromFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setupFile func(t *testing.T) string
		wantErr   bool
	}{
		"valid file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return createTempFile(t, "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\n")
			},
		},
		"non-existent file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: true,
		},
		"directory instead of file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.NewLoaderFromFile(tc.setupFile(t), configs.New, configs.DefaultValidator)
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestLoader_ValidateAndLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input      string
		errMsg     string
		wantLib    string
		wantSuffix string
	}{
		"minimal config gets defaults": {
			input:      "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\n",
			wantSuffix: ".bak",
		},
		"full config": {
			input: `apiVersion: mkprefix.macropower.dev/v1beta1
kind: Config
library: libgnu
prefix: gl/lib/
backupSuffix: .orig
`,
			wantLib:    "libgnu",
			wantSuffix: ".orig",
		},
		"wrong kind": {
			input:  "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Configuration\n",
			errMsg: "$.kind",
		},
		"wrong api version": {
			input:  "apiVersion: v1\nkind: Config\n",
			errMsg: "$.apiVersion",
		},
		"unknown field": {
			input:  "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\nlib: libgnu\n",
			errMsg: "lib",
		},
		"invalid library": {
			input:  "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\nlibrary: lib-gnu\n",
			errMsg: "$.library",
		},
		"invalid yaml": {
			input:  "apiVersion: [\n",
			errMsg: "validate",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewLoaderFromBytes([]byte(tc.input), configs.New, configs.DefaultValidator)

			cfg, err := cl.ValidateAndLoad()
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantLib, cfg.Library)
			assert.Equal(t, tc.wantSuffix, cfg.BackupSuffix)
		})
	}
}

func TestLoader_ValidationErrorHasSource(t *testing.T) {
	t.Parallel()

	input := "apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\nbackupSuffix: \"\"\n"
	cl := config.NewLoaderFromBytes([]byte(input), configs.New, configs.DefaultValidator)

	err := cl.Validate()
	require.Error(t, err)

	var yamlErr *yaml.Error
	require.ErrorAs(t, err, &yamlErr)
	assert.Equal(t, []byte(input), yamlErr.Source)
	assert.Equal(t, "$.backupSuffix", yamlErr.Path.String())
}

type rejectAll struct{}

func (rejectAll) Validate(any) error { return assert.AnError }

func TestWithValidator(t *testing.T) {
	t.Parallel()

	input := []byte("apiVersion: mkprefix.macropower.dev/v1beta1\nkind: Config\n")

	cl := config.NewLoaderFromBytes(input, configs.New, configs.DefaultValidator, config.WithValidator(rejectAll{}))
	require.ErrorIs(t, cl.Validate(), assert.AnError)

	cl = config.NewLoaderFromBytes(input, configs.New, nil)
	require.NoError(t, cl.Validate())
}
