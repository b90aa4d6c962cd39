package shared

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateIDBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "length 4", input: strings.Repeat("a", 4), want: false},
		{name: "length 5", input: strings.Repeat("a", 5), want: true},
		{name: "length 32", input: strings.Repeat("a", 32), want: true},
		{name: "length 33", input: strings.Repeat("a", 33), want: false},
		{name: "empty", input: "", want: false},
		{name: "ascii punctuation allowed", input: "a b-c!", want: true},
		{name: "non-ascii", input: "привет", want: false},
		{name: "non-ascii mixed", input: "abcdé", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateID(tt.input))
		})
	}
}

func TestIsASCIIAndInRange(t *testing.T) {
	assert.True(t, IsASCIIAndInRange("", 0, 0))
	assert.True(t, IsASCIIAndInRange("abc", 3, 3))
	assert.False(t, IsASCIIAndInRange("abc", 4, 10))
	assert.False(t, IsASCIIAndInRange("ab€", 1, 10))
}

func TestIsAlnumWithUnderscore(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"_", true},
		{"abc_123", true},
		{"ABC", true},
		{"a-b", false},
		{"a.b", false},
		{"a b", false},
		{"ünï", false},
		{"١٢٣", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAlnumWithUnderscore(tt.input), "input %q", tt.input)
	}
}

func TestHasValidLeadingCharacter(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"1abc", false},
		{"_abc", false},
		{"abc", true},
		{"Abc", true},
		{".abc", true},
		{"é", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasValidLeadingCharacter(tt.input), "input %q", tt.input)
	}
}

func TestIsAllDigits(t *testing.T) {
	assert.False(t, IsAllDigits(""))
	assert.True(t, IsAllDigits("0123"))
	assert.False(t, IsAllDigits("12a"))
	assert.False(t, IsAllDigits("1_2"))
}
