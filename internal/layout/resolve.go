// Package layout maps schema names to the on-disk locations of their
// generated model sources.
package layout

import (
	"path/filepath"
	"strings"

	"relatedgen/internal/common"
)

// Resolve returns the path of the generated model file for a schema.
// Each dot-separated component of modelPackage becomes a nested directory
// under outputDir, and the file name is the snake_case schema name with
// the Go source extension ("AccountHolder" -> "account_holder.go").
//
// Resolve is pure: it never touches the filesystem. Existence is the
// caller's concern.
func Resolve(outputDir, modelPackage, schemaName string) string {
	segs := make([]string, 0, 4)
	segs = append(segs, outputDir)
	segs = append(segs, strings.Split(modelPackage, ".")...)
	segs = append(segs, common.Snake(schemaName)+".go")

	return filepath.Join(segs...)
}
