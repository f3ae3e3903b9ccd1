package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredValidator(t *testing.T) {
	t.Run("Constructor", func(t *testing.T) {
		v := Required()
		assert.NotNil(t, v)
		assert.Equal(t, "required", v.Name())
		assert.False(t, v.IsType())
		assert.Empty(t, v.MessagePlaceholders(&Context{}))
	})

	cases := []struct {
		value any
		want  bool
	}{
		{value: "a", want: true},
		{value: "", want: true},
		{value: 0, want: true},
		{value: false, want: true},
		{value: nil, want: false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Validate_%v_%t", c.value, c.want), func(t *testing.T) {
			v := Required()
			assert.Equal(t, c.want, v.Validate(&Context{Value: c.value}))
		})
	}
}

func TestStringValidator(t *testing.T) {
	t.Run("Constructor", func(t *testing.T) {
		v := String()
		assert.NotNil(t, v)
		assert.Equal(t, "string", v.Name())
		assert.True(t, v.IsType())
		assert.Empty(t, v.MessagePlaceholders(&Context{}))
	})

	cases := []struct {
		value any
		want  bool
	}{
		{value: "a", want: true},
		{value: "", want: true},
		{value: 'a', want: false},
		{value: 2, want: false},
		{value: []string{"a"}, want: false},
		{value: nil, want: false},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("Validate_%v_%t", c.value, c.want), func(t *testing.T) {
			v := String()
			assert.Equal(t, c.want, v.Validate(&Context{Value: c.value}))
		})
	}
}
