package descriptor

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// relationOneToMany is the only relation value that widens the declared
// field type to a list of the target type.
const relationOneToMany = "OneToMany"

// knownRelations are the relation values the cardinality branch was
// written for. Anything else still normalizes to ToOne; IsKnownRelation
// lets callers surface a warning for the rest.
var knownRelations = map[string]struct{}{
	"":                {},
	"OneToOne":        {},
	relationOneToMany: {},
	"ManyToOne":       {},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize validates a raw extension entry and produces its canonical
// descriptor. The relation switch is deliberately two-way: exactly
// "OneToMany" maps to ToMany, and every other value, including absent,
// maps to ToOne.
func Normalize(raw Raw) (Descriptor, error) {
	if err := validate.Struct(raw); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	card := ToOne
	if raw.Relation == relationOneToMany {
		card = ToMany
	}

	return Descriptor{
		Name:          raw.Name,
		TargetType:    raw.Type,
		Cardinality:   card,
		ObjectKind:    raw.ObjectType,
		FetchStrategy: raw.FetchType,
	}, nil
}

// IsKnownRelation reports whether a relation value is one of the
// recognized spellings. Unknown values (e.g. "ManyToMany") are not an
// error, but callers should warn before the silent ToOne fallback.
func IsKnownRelation(relation string) bool {
	_, ok := knownRelations[relation]
	return ok
}
