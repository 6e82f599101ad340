// Package related is the runtime support package augmented model files
// import. It defines the relation metadata types referenced by injected
// code and a per-type registry populated from generated var initializers.
package related

import (
	"fmt"
	"reflect"
	"sync"
)

// ObjectType identifies the kind of domain entity a relation points at.
// Concrete members are declared by the consuming model tree (e.g.
// ObjectTypeCustomer); they are referenced by the injected registration
// code as qualified identifiers, so a missing member is a compile error
// there, not a silent runtime string.
type ObjectType string

// FetchType selects how a related object is materialized.
type FetchType string

const (
	// FetchTypeLazy defers loading until the relation is accessed.
	FetchTypeLazy FetchType = "LAZY"
	// FetchTypeEager loads the relation together with its owner.
	FetchTypeEager FetchType = "EAGER"
)

// IsValid reports whether the fetch type is a recognized value.
func (f FetchType) IsValid() bool {
	return f == FetchTypeLazy || f == FetchTypeEager
}

// Relation describes one related-object declaration attached to a model
// field.
type Relation struct {
	Object ObjectType
	Fetch  FetchType
}

var (
	mu       sync.RWMutex
	registry = map[string]map[string]Relation{}
)

// Register records the relation metadata for a field of model type T.
// It is written to be called from generated var initializers:
//
//	var _ = related.Register[Account]("customer", related.Relation{
//		Object: enums.ObjectTypeCustomer,
//		Fetch:  related.FetchTypeLazy,
//	})
//
// Registering the same field of the same type twice panics, mirroring
// the duplicate-declaration error the injected field itself would cause.
func Register[T any](field string, rel Relation) struct{} {
	owner := ownerKey[T]()

	mu.Lock()
	defer mu.Unlock()

	fields := registry[owner]
	if fields == nil {
		fields = map[string]Relation{}
		registry[owner] = fields
	}

	if _, dup := fields[field]; dup {
		panic(fmt.Sprintf("related: duplicate registration for %s.%s", owner, field))
	}

	fields[field] = rel

	return struct{}{}
}

// Lookup returns the relation registered for a field of model type T.
func Lookup[T any](field string) (Relation, bool) {
	mu.RLock()
	defer mu.RUnlock()

	rel, ok := registry[ownerKey[T]()][field]

	return rel, ok
}

// Of returns a copy of all relations registered for model type T, keyed
// by field name.
func Of[T any]() map[string]Relation {
	mu.RLock()
	defer mu.RUnlock()

	out := make(map[string]Relation)
	for field, rel := range registry[ownerKey[T]()] {
		out[field] = rel
	}

	return out
}

// ownerKey identifies a model type by package path and name, so
// same-named types from different packages never share an entry.
func ownerKey[T any]() string {
	t := reflect.TypeFor[T]()

	return t.PkgPath() + "." + t.Name()
}
