package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "relatedgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
spec_path = "openapi.yaml"
output_dir = "generated"
model_package = "banking.model"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "banking.model", cfg.ModelPackage)
	assert.Equal(t, "relatedgen/pkg/related", cfg.Imports.Related)
	// Enums falls back to the related package when unset.
	assert.Equal(t, cfg.Imports.Related, cfg.Imports.Enums)
	assert.Equal(t, "openapi-generator-cli", cfg.Generator.Binary)
	assert.Equal(t, "go", cfg.Generator.Name)
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	path := writeConfig(t, `
spec_path = "openapi.yaml"
output_dir = "generated"
model_package = "model"
`)

	cfg, err := Load(path)

	require.NoError(t, err)

	dir := filepath.Dir(path)
	assert.Equal(t, filepath.Join(dir, "openapi.yaml"), cfg.SpecPath)
	assert.Equal(t, filepath.Join(dir, "generated"), cfg.OutputDir)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
spec_path = "/abs/openapi.json"
output_dir = "/abs/out"
model_package = "banking.account.model"

[imports]
related = "example.com/banking/related"
enums = "example.com/banking/enums"

[generator]
binary = "openapi-generator"
name = "go-server"
template_dir = "templates"

[generator.additional_properties]
packageName = "model"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/abs/openapi.json", cfg.SpecPath)
	assert.Equal(t, "example.com/banking/enums", cfg.Imports.Enums)
	assert.Equal(t, "go-server", cfg.Generator.Name)
	assert.Equal(t, "model", cfg.Generator.AdditionalProperties["packageName"])
}

func TestLoad_MissingRequiredKeys(t *testing.T) {
	path := writeConfig(t, `
spec_path = "openapi.yaml"
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_dir")
	assert.Contains(t, err.Error(), "model_package")
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `
spec_path = "openapi.yaml"
output_dir = "generated"
model_package = "model"
model_pakcage = "typo"
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config keys")
	assert.Contains(t, err.Error(), "model_pakcage")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
