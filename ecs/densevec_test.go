package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseVector_PushPop(t *testing.T) {
	t.Run("TC001: push grows logical size and is readable via At", func(t *testing.T) {
		var v denseVector[int]
		v.Push(10)
		v.Push(20)
		assert.Equal(t, 2, v.Len())
		assert.Equal(t, 10, v.At(0))
		assert.Equal(t, 20, v.At(1))
	})

	t.Run("TC002: pop decrements logical size without touching backing data", func(t *testing.T) {
		var v denseVector[int]
		v.Push(1)
		v.Push(2)
		v.Pop()
		assert.Equal(t, 1, v.Len())
		assert.Equal(t, []int{1, 2}, v.data)
	})
}

func TestDenseVector_ClearReusesCapacity(t *testing.T) {
	t.Run("TC003: clear resets size to zero but keeps backing array", func(t *testing.T) {
		var v denseVector[int]
		for i := 0; i < 5; i++ {
			v.Push(i)
		}
		backing := cap(v.data)
		v.Clear()
		assert.Equal(t, 0, v.Len())
		assert.Equal(t, backing, cap(v.data))

		v.Push(99)
		assert.Equal(t, 99, v.At(0))
	})

	t.Run("TC004: clearAll drops the backing array", func(t *testing.T) {
		var v denseVector[int]
		v.Push(1)
		v.ClearAll()
		assert.Equal(t, 0, len(v.data))
	})
}

func TestDenseVector_ForceGet(t *testing.T) {
	t.Run("TC005: forceGet grows size and zero-fills newly exposed slots", func(t *testing.T) {
		var v denseVector[int]
		ptr := v.ForceGet(4)
		*ptr = 42
		assert.Equal(t, 5, v.Len())
		assert.Equal(t, 0, v.At(0))
		assert.Equal(t, 42, v.At(4))
	})

	t.Run("TC006: forceGet on an already-covered index does not shrink size", func(t *testing.T) {
		var v denseVector[int]
		v.ForceGet(4)
		v.ForceGet(1)
		assert.Equal(t, 5, v.Len())
	})
}

func TestDenseVector_Resize(t *testing.T) {
	t.Run("TC007: resize up fills new slots with the given value", func(t *testing.T) {
		var v denseVector[int]
		v.Push(1)
		v.Resize(4, -1)
		assert.Equal(t, []int{1, -1, -1, -1}, v.Data())
	})

	t.Run("TC008: resize down truncates logical size", func(t *testing.T) {
		var v denseVector[int]
		v.Resize(4, 0)
		v.Resize(2, 0)
		assert.Equal(t, 2, v.Len())
	})
}
