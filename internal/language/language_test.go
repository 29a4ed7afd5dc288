package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "hello world", "hello world"},
		{"mixed case", "Hello World", "hello world"},
		{"surrounding whitespace", "  Hello   World  ", "hello world"},
		{"tabs and newlines", "hello\tbig\nworld", "hello big world"},
		{"empty", "", ""},
		{"only whitespace", "   \t\n ", ""},
		{"unicode", "GRÜSS Gott", "grüss gott"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("indonesian"))
	assert.True(t, IsValid("english"), "english is always a valid source")
	assert.True(t, IsValid("chinese"))
	assert.False(t, IsValid("klingon"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Indonesian"), "identifiers are lowercase")
}

func TestName(t *testing.T) {
	assert.Equal(t, "Indonesian", Name("indonesian"))
	assert.Equal(t, "English", Name("english"))
	assert.Equal(t, "Chinese (Mandarin)", Name("chinese"))
	assert.Equal(t, "Elvish", Name("elvish"), "unknown codes get capitalized as-is")
	assert.Equal(t, "", Name(""))
}
