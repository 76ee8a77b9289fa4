package models

import (
	"testing"

	"github.com/Ruby-dev1/AIgnite/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestIntSet_SetSemantics(t *testing.T) {
	s := IntSet{}
	s = s.Add(3)
	s = s.Add(1)
	s = s.Add(3) // duplicate is a no-op

	assert.Len(t, s, 2)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(2))
	assert.Equal(t, IntSet{1, 3}, s, "set stays sorted")
}

func TestIntSet_ContainsAll(t *testing.T) {
	s := IntSet{1, 2, 3}
	assert.True(t, s.ContainsAll([]int{1, 3}))
	assert.True(t, s.ContainsAll(nil))
	assert.False(t, s.ContainsAll([]int{1, 4}))
}

func TestIntSet_ScanRoundTrip(t *testing.T) {
	s := IntSet{2, 5, 9}
	val, err := s.Value()
	assert.NoError(t, err)

	var out IntSet
	assert.NoError(t, out.Scan(val))
	assert.Equal(t, s, out)

	var empty IntSet
	assert.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestCategoryXP_Total(t *testing.T) {
	m := CategoryXP{
		catalog.CategoryTech:   450,
		catalog.CategoryHealth: 220,
	}
	assert.Equal(t, 670, m.Total())
	assert.Zero(t, CategoryXP{}.Total())
}
