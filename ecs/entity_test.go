package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_NullHandle(t *testing.T) {
	t.Run("TC001: zero-value Entity is not the null entity", func(t *testing.T) {
		var e Entity
		assert.False(t, e.IsNull())
	})

	t.Run("TC002: NullEntity reports IsNull", func(t *testing.T) {
		assert.True(t, NullEntity.IsNull())
	})

	t.Run("TC003: String renders the null handle distinctly", func(t *testing.T) {
		assert.Equal(t, "Entity(null)", NullEntity.String())
	})
}

func TestRegistry_CreateAndValid(t *testing.T) {
	r := NewRegistry()

	t.Run("TC004: a freshly created entity is valid", func(t *testing.T) {
		e := r.Create()
		assert.True(t, r.Valid(e))
	})

	t.Run("TC005: NullEntity is never valid", func(t *testing.T) {
		assert.False(t, r.Valid(NullEntity))
	})

	t.Run("TC006: sequential creates produce distinct handles", func(t *testing.T) {
		a := r.Create()
		b := r.Create()
		assert.NotEqual(t, a, b)
	})
}

func TestRegistry_HandleInvalidation(t *testing.T) {
	r := NewRegistry()

	t.Run("TC007: destroying and recreating reuses the id but bumps version", func(t *testing.T) {
		e1 := r.Create()
		r.Destroy(e1)
		e2 := r.Create()

		require.Equal(t, e1.ID(), e2.ID())
		assert.NotEqual(t, e1.Generation(), e2.Generation())
		assert.False(t, r.Valid(e1))
		assert.True(t, r.Valid(e2))
	})

	t.Run("TC008: destroying an already-invalid entity is a no-op", func(t *testing.T) {
		e := r.Create()
		r.Destroy(e)
		assert.NotPanics(t, func() { r.Destroy(e) })
	})
}

func TestRegistry_Counters(t *testing.T) {
	t.Run("TC009: entity count tracks live entities only", func(t *testing.T) {
		r := NewRegistry()
		a := r.Create()
		r.Create()
		assert.Equal(t, 2, r.EntityCount())

		r.Destroy(a)
		assert.Equal(t, 1, r.EntityCount())
	})

	t.Run("TC010: max entity count never shrinks on destroy", func(t *testing.T) {
		r := NewRegistry()
		a := r.Create()
		r.Destroy(a)
		assert.Equal(t, 1, r.MaxEntityCount())
	})
}
