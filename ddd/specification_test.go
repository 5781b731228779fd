package ddd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecification(t *testing.T) {
	notEmpty := NewSpecification(func(s string) bool {
		return s != ""
	})
	short := NewSpecification(func(s string) bool {
		return len(s) <= 9
	})
	dotted := NewSpecification(func(s string) bool {
		return strings.HasSuffix(s, ".")
	})

	assert.True(t, notEmpty.IsSatisfiedBy("editor."))
	assert.False(t, notEmpty.IsSatisfiedBy(""))

	assert.True(t, notEmpty.And(short).IsSatisfiedBy("editor."))
	assert.False(t, notEmpty.And(short).IsSatisfiedBy("Texto-inicial-do-editor."))
	assert.False(t, NewAndSpecification(short, dotted).IsSatisfiedBy("editor"))

	assert.True(t, short.Or(dotted).IsSatisfiedBy("Texto-inicial-do-editor."))
	assert.False(t, NewOrSpecification(short, dotted).IsSatisfiedBy("Texto-inicial-do-editor"))

	assert.True(t, notEmpty.Not().IsSatisfiedBy(""))
	assert.False(t, NewNotSpecification(dotted).IsSatisfiedBy("editor."))
	assert.True(t, dotted.Not().Not().IsSatisfiedBy("editor."))

	assert.True(t, notEmpty.And(short.Not()).Or(dotted).IsSatisfiedBy("Texto-inicial-do-editor"))
}
