// Package config loads the TOML-driven run configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds everything a run needs: where the specification document
// lives, where the generated sources live, and how injected members
// reference their support packages.
type Config struct {
	// SpecPath is the OpenAPI specification document (YAML or JSON).
	SpecPath string `toml:"spec_path"`
	// OutputDir is the root of the generated source tree.
	OutputDir string `toml:"output_dir"`
	// ModelPackage is the dotted package identifier mapped to nested
	// directories under OutputDir (e.g. "banking.account.model").
	ModelPackage string `toml:"model_package"`

	Imports   ImportsConfig   `toml:"imports"`
	Generator GeneratorConfig `toml:"generator"`

	// configDir is the directory containing the TOML file, used to
	// resolve relative paths.
	configDir string
}

// ImportsConfig names the support packages injected members reference.
type ImportsConfig struct {
	// Related is the import path of the relation runtime package
	// (Relation type, FetchType constants, Register).
	Related string `toml:"related"`
	// Enums is the import path of the package holding the ObjectType
	// constants. Defaults to the related package when unset.
	Enums string `toml:"enums"`
}

// GeneratorConfig drives the optional upstream generator invocation
// (relatedgen generate). It has no effect on apply.
type GeneratorConfig struct {
	// Binary is the generator executable name or path.
	Binary string `toml:"binary"`
	// Name is the generator to run (the -g argument).
	Name string `toml:"name"`
	// TemplateDir overrides the generator's built-in templates.
	TemplateDir string `toml:"template_dir"`
	// AdditionalProperties are passed as --additional-properties k=v pairs.
	AdditionalProperties map[string]string `toml:"additional_properties"`
}

// defaultRelatedImport is the relation runtime shipped with this module.
const defaultRelatedImport = "relatedgen/pkg/related"

// Load reads a TOML config file and returns a Config with defaults
// applied and relative paths resolved against the config file location.
// Unknown keys are rejected to catch typos early.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		Imports: ImportsConfig{Related: defaultRelatedImport},
		Generator: GeneratorConfig{
			Binary: "openapi-generator-cli",
			Name:   "go",
		},
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if unknown := md.Undecoded(); len(unknown) > 0 {
		keys := make([]string, len(unknown))
		for i, k := range unknown {
			keys[i] = k.String()
		}

		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	cfg.configDir = filepath.Dir(absPath)

	if err := cfg.finalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// finalize validates required options and applies derived defaults.
func (c *Config) finalize() error {
	var missing []string

	if c.SpecPath == "" {
		missing = append(missing, "spec_path")
	}

	if c.OutputDir == "" {
		missing = append(missing, "output_dir")
	}

	if c.ModelPackage == "" {
		missing = append(missing, "model_package")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}

	c.SpecPath = c.resolvePath(c.SpecPath)
	c.OutputDir = c.resolvePath(c.OutputDir)

	if c.Imports.Enums == "" {
		c.Imports.Enums = c.Imports.Related
	}

	return nil
}

// resolvePath makes a path absolute relative to the config file directory.
func (c *Config) resolvePath(p string) string {
	if filepath.IsAbs(p) || c.configDir == "" {
		return p
	}

	return filepath.Join(c.configDir, p)
}
