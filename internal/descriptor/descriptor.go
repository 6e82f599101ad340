// Package descriptor defines the canonical related-object descriptor model
// and the normalization of raw spec extension entries into it.
package descriptor

import "errors"

// Error kinds shared across the pipeline. The scanner, augmentor, and
// driver wrap their failures around these sentinels so callers can
// classify outcomes with errors.Is.
var (
	// ErrMalformedSpec means the specification document could not be read
	// as structured data. Fatal to a run.
	ErrMalformedSpec = errors.New("malformed spec document")
	// ErrInvalidDescriptor means a raw x-related-objects entry is missing
	// required fields.
	ErrInvalidDescriptor = errors.New("invalid related-object descriptor")
	// ErrFileNotFound means no generated model file exists for a schema.
	ErrFileNotFound = errors.New("model file not found")
	// ErrUnparsableSource means a model file is not valid Go source.
	ErrUnparsableSource = errors.New("unparsable source file")
	// ErrNoPrimaryType means a model file contains no struct declaration
	// to attach relationship members to.
	ErrNoPrimaryType = errors.New("no primary type declaration")
	// ErrSerializationFailure means the mutated tree could not be printed
	// back to source text, or file I/O on the model failed.
	ErrSerializationFailure = errors.New("source serialization failed")
)

// Raw is one x-related-objects entry exactly as it appears in the
// specification document.
type Raw struct {
	// Name is the field name to inject, unique within one schema's list.
	Name string `yaml:"name" json:"name" validate:"required"`
	// Type is the related object's base type.
	Type string `yaml:"type" json:"type" validate:"required"`
	// Relation is the optional cardinality hint (e.g. "OneToOne",
	// "OneToMany"). Absent means to-one.
	Relation string `yaml:"relation" json:"relation"`
	// ObjectType is the object-kind enum member name (e.g. "CUSTOMER").
	ObjectType string `yaml:"objectType" json:"objectType" validate:"required"`
	// FetchType is the fetch-strategy enum member name (e.g. "LAZY").
	FetchType string `yaml:"fetchType" json:"fetchType" validate:"required"`
}

// Cardinality distinguishes to-one from to-many relationships.
type Cardinality int

const (
	// ToOne declares the field as the bare target type.
	ToOne Cardinality = iota
	// ToMany declares the field as a slice of the target type.
	ToMany
)

// String returns a human-readable cardinality name.
func (c Cardinality) String() string {
	if c == ToMany {
		return "to-many"
	}

	return "to-one"
}

// Descriptor is the canonical, immutable form of one related-object
// declaration. Identity key within a schema is Name.
type Descriptor struct {
	Name          string
	TargetType    string
	Cardinality   Cardinality
	ObjectKind    string
	FetchStrategy string
}
