package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxValidator(t *testing.T) {
	t.Run("Constructor", func(t *testing.T) {
		v := Max(3)
		assert.NotNil(t, v)
		assert.Equal(t, "max", v.Name())
		assert.False(t, v.IsType())
		assert.Equal(t, 3, v.Max)
		assert.Equal(t, []string{":max", "3"}, v.MessagePlaceholders(&Context{}))
	})

	cases := []struct {
		value any
		max   int
		want  bool
	}{
		{value: "abc", max: 3, want: true},
		{value: "abcd", max: 3, want: false},
		{value: "", max: 0, want: true},
		{value: "🇫🇷🇫🇷🇫🇷", max: 3, want: true}, // Grapheme clusters
		{value: "👍🏽👍🏽👍🏽👍🏽", max: 3, want: false},
		{value: "éèà", max: 3, want: true},
		{value: 12345, max: 3, want: true},
		{value: true, max: 3, want: true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Validate_%v_%d_%t", c.value, c.max, c.want), func(t *testing.T) {
			v := Max(c.max)
			assert.Equal(t, c.want, v.Validate(&Context{Value: c.value}))
		})
	}
}

func TestMinValidator(t *testing.T) {
	t.Run("Constructor", func(t *testing.T) {
		v := Min(2)
		assert.NotNil(t, v)
		assert.Equal(t, "min", v.Name())
		assert.False(t, v.IsType())
		assert.Equal(t, 2, v.Min)
		assert.Equal(t, []string{":min", "2"}, v.MessagePlaceholders(&Context{}))
	})

	cases := []struct {
		value any
		min   int
		want  bool
	}{
		{value: "ab", min: 2, want: true},
		{value: "a", min: 2, want: false},
		{value: "", min: 1, want: false},
		{value: "🇫🇷🇫🇷", min: 2, want: true},
		{value: "🇫🇷", min: 2, want: false},
		{value: 1, min: 2, want: true},
		{value: []string{}, min: 2, want: true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Validate_%v_%d_%t", c.value, c.min, c.want), func(t *testing.T) {
			v := Min(c.min)
			assert.Equal(t, c.want, v.Validate(&Context{Value: c.value}))
		})
	}
}
