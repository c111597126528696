// Package configs provides the Config type read from .mkprefix.yaml.
package configs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/macropower/mkprefix/api"
	"github.com/macropower/mkprefix/api/v1beta1"
	"github.com/macropower/mkprefix/pkg/yaml"
)

//go:generate go run ../../../internal/schemagen/main.go -root ../../.. -o configs.v1beta1.json

// DefaultBackupSuffix names the copy kept of a fragment before it is rewritten.
const DefaultBackupSuffix = ".bak"

var (
	// FileNames contains the valid names for configuration files.
	FileNames = []string{
		".mkprefix.yaml",
		"mkprefix.yaml",
	}

	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed configs.v1beta1.json
	schemaJSON []byte

	// ValidKinds contains the valid kind values for configurations.
	ValidKinds = []string{"Config"}

	// DefaultValidator validates configuration against the JSON schema.
	DefaultValidator = yaml.MustNewValidator("/configs.v1beta1.json", schemaJSON)

	ErrInvalidPrefix = errors.New("prefix must end with \"/\"")

	// Compile-time interface checks.
	_ v1beta1.Object = (*Config)(nil)
)

// Config holds per-project defaults for the command line flags.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	v1beta1.TypeMeta `json:",inline"`

	// Library is the library base name, as in <library>_a_SOURCES.
	Library string `json:"library,omitempty" jsonschema:"title=Library,pattern=^[A-Za-z0-9_]+$"`
	// Prefix overrides the prefix derived from the fragment's directory.
	Prefix string `json:"prefix,omitempty" jsonschema:"title=Prefix,pattern=/$"`
	// BackupSuffix is appended to the fragment path to name the backup copy.
	BackupSuffix string `json:"backupSuffix,omitempty" jsonschema:"title=Backup Suffix,minLength=1"`
}

// New creates a new [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       "Config",
		},
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults fills unset fields with their default values.
func (c *Config) EnsureDefaults() {
	if c.BackupSuffix == "" {
		c.BackupSuffix = DefaultBackupSuffix
	}
}

// Validate checks constraints the schema cannot express on its own.
func (c *Config) Validate() error {
	if c.Prefix != "" && !strings.HasSuffix(c.Prefix, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPrefix, c.Prefix)
	}

	return nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := api.MarshalYAML(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}

// WriteDefault writes the embedded default config.yaml to the specified path.
func WriteDefault(path string, force bool) error {
	err := api.WriteDefaultFile(path, defaultConfigYAML, force, "configuration")
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	return nil
}

// Find searches for a config file starting from targetPath and walking up
// the directory tree. It returns an empty string if none is found.
func Find(targetPath string) (string, error) {
	path, err := api.FindConfigFile(targetPath, FileNames)
	if err != nil {
		return "", fmt.Errorf("find config: %w", err)
	}

	return path, nil
}
