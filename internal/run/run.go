// Package run drives one augmentation pass: scan the specification,
// resolve each schema's model file, augment it, and write it back.
package run

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/phuslu/log"

	"relatedgen/internal/augment"
	"relatedgen/internal/config"
	"relatedgen/internal/descriptor"
	"relatedgen/internal/diagnostic"
	"relatedgen/internal/layout"
	"relatedgen/internal/spec"
)

// filePerm matches the permissions the upstream generator writes with.
const filePerm = 0o644

// Runner processes every schema declaring the relationship extension.
// Files are handled strictly one at a time; no state survives between
// them, so a partially failed run can simply be restarted.
type Runner struct {
	cfg *config.Config
	log log.Logger
	aug *augment.Augmentor
}

// New creates a Runner using the standard Go parser/printer.
func New(cfg *config.Config, logger log.Logger) *Runner {
	support := augment.Support{
		RelatedImport: cfg.Imports.Related,
		EnumsImport:   cfg.Imports.Enums,
	}
	if support.EnumsImport == "" {
		support.EnumsImport = support.RelatedImport
	}

	return &Runner{
		cfg: cfg,
		log: logger,
		aug: augment.New(augment.GoSyntax{}, support),
	}
}

// Run scans the specification and augments each schema's model file.
// A failure scanning the document is fatal (there is nothing to iterate);
// every per-schema failure is recorded in its Result and never interrupts
// the remaining schemas.
func (r *Runner) Run() ([]diagnostic.Result, error) {
	schemas, err := spec.Load(r.cfg.SpecPath)
	if err != nil {
		return nil, err
	}

	r.log.Info().
		Str("spec", r.cfg.SpecPath).
		Int("schemas", len(schemas)).
		Msg("scanned specification for related-object extensions")

	results := make([]diagnostic.Result, 0, len(schemas))
	for _, sr := range schemas {
		results = append(results, r.processSchema(sr))
	}

	return results, nil
}

// processSchema handles one schema end to end: resolve, read, normalize,
// augment, write. The file is fully read and fully rewritten before the
// next schema is touched.
func (r *Runner) processSchema(sr spec.SchemaRelations) diagnostic.Result {
	path := layout.Resolve(r.cfg.OutputDir, r.cfg.ModelPackage, sr.Schema)
	res := diagnostic.Result{Schema: sr.Schema, FilePath: path}

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			res.Code = diagnostic.CodeFileNotFound
			res.Err = fmt.Errorf("%w: %s", descriptor.ErrFileNotFound, path)
			r.log.Warn().Str("schema", sr.Schema).Str("path", path).Msg("model file not found")

			return res
		}

		// The file exists but could not be read (permissions, directory
		// in its place); that is an I/O failure, not a missing file.
		res.Code = diagnostic.CodeSerializationFailure
		res.Err = fmt.Errorf("%w: %v", descriptor.ErrSerializationFailure, err)
		r.log.Warn().Str("schema", sr.Schema).Str("path", path).Msg("model file unreadable")

		return res
	}

	descs := make([]descriptor.Descriptor, 0, len(sr.Related))

	for _, raw := range sr.Related {
		if !descriptor.IsKnownRelation(raw.Relation) {
			r.log.Warn().
				Str("schema", sr.Schema).
				Str("name", raw.Name).
				Str("relation", raw.Relation).
				Msg("unrecognized relation value, treating as to-one")
		}

		d, err := descriptor.Normalize(raw)
		if err != nil {
			res.Code = diagnostic.CodeInvalidDescriptor
			res.Err = fmt.Errorf("schema %s: %w", sr.Schema, err)

			return res
		}

		descs = append(descs, d)
	}

	out, ares, err := r.aug.Augment(filepath.Base(path), src, sr.Schema, descs)
	res.Added = ares.Added
	res.SkippedExisting = ares.SkippedExisting

	if err != nil {
		res.Code = codeFor(err)
		res.Err = err

		return res
	}

	if ares.Added == 0 {
		res.Code = diagnostic.CodeSkipped
		r.log.Info().Str("schema", sr.Schema).Msg("all relationship members already present")

		return res
	}

	if err := os.WriteFile(path, out, filePerm); err != nil {
		res.Code = diagnostic.CodeSerializationFailure
		res.Err = fmt.Errorf("%w: %v", descriptor.ErrSerializationFailure, err)

		return res
	}

	res.Code = diagnostic.CodeAugmented
	r.log.Info().
		Str("schema", sr.Schema).
		Str("path", path).
		Int("added", ares.Added).
		Msg("augmented model file")

	return res
}

// codeFor classifies an augmentation error into its outcome code.
func codeFor(err error) diagnostic.Code {
	switch {
	case errors.Is(err, descriptor.ErrUnparsableSource):
		return diagnostic.CodeUnparsableSource
	case errors.Is(err, descriptor.ErrNoPrimaryType):
		return diagnostic.CodeNoPrimaryType
	default:
		return diagnostic.CodeSerializationFailure
	}
}
