package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_CharsetMembership(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		allowed string
	}{
		{
			name:    "letters only",
			opts:    Options{Length: 32},
			allowed: lower + upper,
		},
		{
			name:    "letters and digits",
			opts:    Options{Length: 32, Digits: true},
			allowed: lower + upper + digits,
		},
		{
			name:    "full charset",
			opts:    DefaultOptions(),
			allowed: lower + upper + digits + symbols,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.opts)
			require.NoError(t, err)
			assert.Len(t, got, tt.opts.Length)
			for _, r := range got {
				assert.True(t, strings.ContainsRune(tt.allowed, r), "unexpected character %q", r)
			}
		})
	}
}

func TestGenerate_LengthBounds(t *testing.T) {
	for _, length := range []int{0, MinLength - 1, MaxLength + 1} {
		_, err := Generate(Options{Length: length})
		assert.Error(t, err, "length %d", length)
	}
}
