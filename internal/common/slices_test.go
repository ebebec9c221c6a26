package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))

	v, ok := First([]string{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, even))
	assert.Nil(t, Filter([]int{1, 3}, even))

	v, ok := FirstMatch([]int{1, 6, 8}, even)
	assert.True(t, ok)
	assert.Equal(t, 6, v)

	_, ok = FirstMatch([]int{1}, even)
	assert.False(t, ok)
}

func TestIsInRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
		value    int
		want     bool
	}{
		{name: "inside", min: 0, value: 2, max: 4, want: true},
		{name: "lower bound", min: 0, value: 0, max: 4, want: true},
		{name: "upper bound", min: 0, value: 4, max: 4, want: true},
		{name: "below", min: 0, value: -1, max: 4, want: false},
		{name: "above", min: 0, value: 5, max: 4, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInRange(tt.min, tt.value, tt.max))
		})
	}

	assert.True(t, IsInRange(0.5, 0.75, 1.0))
	assert.True(t, IsIndex(0, 1))
	assert.False(t, IsIndex(0, 0))
	assert.False(t, IsIndex(3, 3))
}
