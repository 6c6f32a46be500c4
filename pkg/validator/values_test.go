package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validates/pkg/validator"
)

type status string

func TestIsBlank(t *testing.T) {
	empty := ""
	filled := "x"
	var nilSlice []string

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: true},
		{name: "empty string", value: "", expected: true},
		{name: "whitespace string", value: " \t\n", expected: true},
		{name: "text", value: "Hello", expected: false},
		{name: "false", value: false, expected: true},
		{name: "true", value: true, expected: false},
		{name: "zero int", value: 0, expected: false},
		{name: "empty slice", value: []int{}, expected: true},
		{name: "nil slice", value: nilSlice, expected: true},
		{name: "filled slice", value: []string{"a"}, expected: false},
		{name: "empty map", value: map[string]int{}, expected: true},
		{name: "nil pointer", value: (*string)(nil), expected: true},
		{name: "pointer to empty", value: &empty, expected: true},
		{name: "pointer to text", value: &filled, expected: false},
		{name: "named string kind", value: status(" "), expected: true},
		{name: "struct", value: struct{}{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsBlank(tt.value))
		})
	}
}

func TestLength(t *testing.T) {
	word := "héllo"

	assert.Equal(t, 0, validator.Length(nil))
	assert.Equal(t, 5, validator.Length("héllo"), "counts runes, not bytes")
	assert.Equal(t, 5, validator.Length(&word))
	assert.Equal(t, 3, validator.Length([]int{1, 2, 3}))
	assert.Equal(t, 1, validator.Length(map[string]int{"a": 1}))
	assert.Equal(t, 4, validator.Length(1234))
	assert.Equal(t, 2, validator.Length(status("ok")))
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
		ok       bool
	}{
		{name: "int", value: 42, expected: 42, ok: true},
		{name: "uint8", value: uint8(7), expected: 7, ok: true},
		{name: "float", value: 1.5, expected: 1.5, ok: true},
		{name: "decimal string", value: " -12.5 ", expected: -12.5, ok: true},
		{name: "exponent string", value: "1e3", expected: 1000, ok: true},
		{name: "leading dot", value: ".5", expected: 0.5, ok: true},
		{name: "text", value: "abc", ok: false},
		{name: "hex string", value: "0x1A", ok: false},
		{name: "empty string", value: "", ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "NaN", value: math.NaN(), ok: false},
		{name: "bool", value: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := validator.ToNumber(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, n, 1e-9)
			}
		})
	}
}

func TestIsInteger(t *testing.T) {
	assert.True(t, validator.IsInteger(3))
	assert.True(t, validator.IsInteger(uint(3)))
	assert.True(t, validator.IsInteger(3.0))
	assert.True(t, validator.IsInteger("-17"))
	assert.False(t, validator.IsInteger(3.2))
	assert.False(t, validator.IsInteger("3.0"))
	assert.False(t, validator.IsInteger("three"))
	assert.False(t, validator.IsInteger(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, validator.Equal(1, int64(1)))
	assert.True(t, validator.Equal(2.0, 2))
	assert.True(t, validator.Equal("a", "a"))
	assert.True(t, validator.Equal([]string{"a"}, []string{"a"}))
	assert.False(t, validator.Equal("1", 1))
	assert.False(t, validator.Equal(nil, ""))
	assert.True(t, validator.Equal(nil, nil))

	yes, no := true, false
	assert.True(t, validator.Equal(true, &yes))
	assert.False(t, validator.Equal(true, &no))
	assert.False(t, validator.Equal(true, (*bool)(nil)))
}

func TestText(t *testing.T) {
	assert.Equal(t, "", validator.Text(nil))
	assert.Equal(t, "abc", validator.Text("abc"))
	assert.Equal(t, "abc", validator.Text([]byte("abc")))
	assert.Equal(t, "42", validator.Text(42))
}
