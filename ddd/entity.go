package ddd

import "github.com/go-leo/gox/slicex"

// Entity is told apart from other objects by its identity, which outlives any change to its
// attributes. Two entities with equal attributes but different identities are different.
type Entity[T any, ID any] interface {
	Identified[T]

	// Identity returns the value naming this entity.
	Identity() ID
}

// Identified is the comparison half of an Entity.
type Identified[T any] interface {
	SameIdentityAs(other T) bool
}

// IdentityIndexes returns the positions in entities holding the same identity as target.
func IdentityIndexes[E Identified[E]](entities []E, target E) []int {
	return slicex.IndexesFunc(entities, func(e E) bool {
		return e.SameIdentityAs(target)
	})
}
