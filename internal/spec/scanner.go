// Package spec locates the x-related-objects vendor extension in an
// OpenAPI specification document.
//
// The scanner assumes nothing about the document beyond the presence of a
// components.schemas mapping. It keeps raw descriptor entries untouched;
// validation belongs to the descriptor package.
package spec

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"relatedgen/internal/descriptor"
)

// ExtensionKey is the vendor extension that declares related objects on a
// schema.
const ExtensionKey = "x-related-objects"

// SchemaRelations pairs a schema name with its declared raw descriptors.
// One SchemaRelations exists per schema that carries the extension.
type SchemaRelations struct {
	Schema  string
	Related []descriptor.Raw
}

// document is the subset of an OpenAPI document this tool reads. YAML
// decoding ignores all other keys, including every standard schema field.
type document struct {
	Components struct {
		Schemas map[string]schemaDef `yaml:"schemas"`
	} `yaml:"components"`
}

type schemaDef struct {
	Related []descriptor.Raw `yaml:"x-related-objects"`
}

// Load reads and scans a specification document from disk.
func Load(path string) ([]SchemaRelations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec %s: %w", path, err)
	}

	return Parse(data)
}

// Parse scans a specification document for schemas declaring the
// x-related-objects extension. The document may be YAML or JSON. Schemas
// without the extension are omitted; a document where no schema declares
// it yields an empty, non-error result. Results are ordered by schema
// name so runs are deterministic.
//
// Fails with descriptor.ErrMalformedSpec when the document cannot be
// decoded, including when components.schemas is present but not a mapping.
func Parse(data []byte) ([]SchemaRelations, error) {
	var doc document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", descriptor.ErrMalformedSpec, err)
	}

	out := make([]SchemaRelations, 0, len(doc.Components.Schemas))

	for _, name := range slices.Sorted(maps.Keys(doc.Components.Schemas)) {
		def := doc.Components.Schemas[name]
		if len(def.Related) == 0 {
			continue
		}

		out = append(out, SchemaRelations{Schema: name, Related: def.Related})
	}

	return out, nil
}
