// Package main provides the CLI entrypoint for relatedgen.
//
// relatedgen post-processes generated OpenAPI model sources:
//   - Scans the specification for the x-related-objects vendor extension
//   - Resolves each declaring schema to its generated Go model file
//   - Injects relationship fields, registrations, and accessors (apply)
//   - Optionally invokes the upstream generator first (generate)
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"relatedgen/internal/config"
	"relatedgen/internal/diagnostic"
	"relatedgen/internal/generate"
	"relatedgen/internal/run"
	"relatedgen/internal/spec"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "relatedgen",
	Short:         "Inject related-object metadata into generated API models",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Augment generated model files with relationship members",
	Args:  cobra.NoArgs,
	RunE:  runApply,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Invoke the upstream OpenAPI generator",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Dump the schemas declaring the relationship extension",
	Args:  cobra.NoArgs,
	RunE:  runScan,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "relatedgen.toml", "path to TOML config file")
	rootCmd.AddCommand(applyCmd, generateCmd, scanCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() log.Logger {
	return log.Logger{
		Level: log.InfoLevel,
		Writer: &log.ConsoleWriter{
			ColorOutput: true,
			Writer:      os.Stderr,
		},
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	results, err := run.New(cfg, newLogger()).Run()
	if err != nil {
		return err
	}

	fmt.Print(diagnostic.Summary(results))

	if diagnostic.HasErrors(results) {
		return fmt.Errorf("%d of %d schemas failed", diagnostic.CountErrors(results), len(results))
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	return generate.Run(cfg, os.Stdout, os.Stderr)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	schemas, err := spec.Load(cfg.SpecPath)
	if err != nil {
		return err
	}

	if len(schemas) == 0 {
		fmt.Println("no schemas declare", spec.ExtensionKey)
		return nil
	}

	spew.Fdump(os.Stdout, schemas)

	return nil
}
