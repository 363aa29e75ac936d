package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"first.last+tag@sub.example.org", true},
		{"abc", false},
		{"abc@", false},
		{"@example.com", false},
		{"", false},
		{"jane doe@example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestColorTag(t *testing.T) {
	t.Parallel()

	type swatch struct {
		C string `validate:"hexcolor_or_ansi"`
	}
	assert.NoError(t, Struct(swatch{C: "#1a2b3c"}))
	assert.NoError(t, Struct(swatch{C: "241"}))
	assert.Error(t, Struct(swatch{C: "256"}))
	assert.Error(t, Struct(swatch{C: "teal"}))
}
