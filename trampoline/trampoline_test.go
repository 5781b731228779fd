package trampoline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countDown(n int, acc int) Trampoline[int] {
	if n == 0 {
		return Done(acc)
	}
	return More(func() Trampoline[int] {
		return countDown(n-1, acc+1)
	})
}

func TestTrampoline_Get(t *testing.T) {
	assert.Equal(t, 1_000_000, countDown(1_000_000, 0).Get())
}

func TestTrampoline_Done(t *testing.T) {
	d := Done("leaf")
	assert.True(t, d.Complete())
	assert.Equal(t, "leaf", d.Result())
	assert.Equal(t, d, d.Jump())
}

func TestTrampoline_MoreIsLazy(t *testing.T) {
	called := false
	m := More(func() Trampoline[int] {
		called = true
		return Done(7)
	})
	assert.False(t, m.Complete())
	assert.False(t, called)
	assert.Panics(t, func() { m.Result() })
	assert.Equal(t, 7, m.Get())
	assert.True(t, called)
}
