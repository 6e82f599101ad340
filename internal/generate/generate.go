// Package generate invokes the upstream OpenAPI code generator. The
// generator is an opaque external process; this package only builds its
// argument list and surfaces its exit status.
package generate

import (
	"fmt"
	"io"
	"maps"
	"os"
	"os/exec"
	"slices"
	"strings"

	"relatedgen/internal/config"
)

const dirPerm = 0o755

// BuildArgs assembles the generator CLI arguments from configuration.
// additional_properties are emitted in sorted key order so invocations
// are reproducible.
func BuildArgs(cfg *config.Config) []string {
	args := []string{
		"generate",
		"-i", cfg.SpecPath,
		"-g", cfg.Generator.Name,
		"-o", cfg.OutputDir,
	}

	if cfg.Generator.TemplateDir != "" {
		args = append(args, "--template-dir", cfg.Generator.TemplateDir)
	}

	props := cfg.Generator.AdditionalProperties
	if len(props) > 0 {
		pairs := make([]string, 0, len(props))
		for _, k := range slices.Sorted(maps.Keys(props)) {
			pairs = append(pairs, k+"="+props[k])
		}

		args = append(args, "--additional-properties", strings.Join(pairs, ","))
	}

	return args
}

// Run executes the configured generator, streaming its output to stdout
// and stderr. The output directory is created if missing.
func Run(cfg *config.Config, stdout, stderr io.Writer) error {
	if _, err := os.Stat(cfg.SpecPath); err != nil {
		return fmt.Errorf("spec document: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	cmd := exec.Command(cfg.Generator.Binary, BuildArgs(cfg)...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", cfg.Generator.Binary, err)
	}

	return nil
}
