package diagnostic

import (
	"fmt"
	"strings"
)

// Code is a unique identifier for a per-schema outcome kind.
type Code string

const (
	// CodeAugmented means new members were injected and written back.
	CodeAugmented Code = "augmented"
	// CodeSkipped means every descriptor was already present.
	CodeSkipped Code = "skipped"
	// CodeFileNotFound means no generated model file exists for the schema.
	CodeFileNotFound Code = "file_not_found"
	// CodeInvalidDescriptor means a raw descriptor failed normalization.
	CodeInvalidDescriptor Code = "invalid_descriptor"
	// CodeUnparsableSource means the model file is not valid Go source.
	CodeUnparsableSource Code = "unparsable_source"
	// CodeNoPrimaryType means the model file has no struct declaration.
	CodeNoPrimaryType Code = "no_primary_type"
	// CodeSerializationFailure means printing the result or file I/O on
	// the model failed.
	CodeSerializationFailure Code = "serialization_failure"
)

// Result is the reported outcome of processing one schema. It is produced
// once per schema by the driver and never persisted.
type Result struct {
	// Schema is the specification schema name.
	Schema string
	// FilePath is the resolved model file location.
	FilePath string
	// Code classifies the outcome.
	Code Code
	// Added counts members injected into the file.
	Added int
	// SkippedExisting lists descriptor names already present in the file.
	SkippedExisting []string
	// Err carries the underlying failure for error outcomes.
	Err error
}

// IsError reports whether the outcome should fail the overall run.
func (r Result) IsError() bool {
	switch r.Code {
	case CodeAugmented, CodeSkipped:
		return false
	default:
		return true
	}
}

// HasErrors reports whether any result is an error outcome.
func HasErrors(results []Result) bool {
	for _, r := range results {
		if r.IsError() {
			return true
		}
	}

	return false
}

// CountErrors returns the number of error outcomes.
func CountErrors(results []Result) int {
	n := 0

	for _, r := range results {
		if r.IsError() {
			n++
		}
	}

	return n
}

// Summary formats one line per schema plus a totals line.
func Summary(results []Result) string {
	var b strings.Builder

	for _, r := range results {
		fmt.Fprintf(&b, "  %-24s %s", r.Schema, r.Code)

		if r.Added > 0 {
			fmt.Fprintf(&b, " (+%d members)", r.Added)
		}

		if len(r.SkippedExisting) > 0 {
			fmt.Fprintf(&b, " (existing: %s)", strings.Join(r.SkippedExisting, ", "))
		}

		if r.Err != nil {
			fmt.Fprintf(&b, ": %v", r.Err)
		}

		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "%d schemas processed, %d failed\n", len(results), CountErrors(results))

	return b.String()
}
