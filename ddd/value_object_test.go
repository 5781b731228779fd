package ddd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ ValueObject[heading] = heading{}

type heading struct {
	runway string
	degree int
}

func (h heading) SameValueAs(other heading) bool {
	return h.runway == other.runway && h.degree == other.degree
}

func TestValueObject_SameValueAs(t *testing.T) {
	h := heading{runway: "09L", degree: 90}

	assert.True(t, h.SameValueAs(heading{runway: "09L", degree: 90}))
	assert.False(t, h.SameValueAs(heading{runway: "09R", degree: 90}))
	assert.False(t, h.SameValueAs(heading{runway: "09L", degree: 270}))
}
