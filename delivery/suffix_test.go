package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuffix(t *testing.T) {
	suffix, err := NewSuffix()
	require.NoError(t, err)
	assert.Len(t, suffix, 16)
	assert.Regexp(t, `^[0-9a-f]{16}$`, suffix)
}

func TestNewSuffix_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		suffix, err := NewSuffix()
		require.NoError(t, err)
		assert.False(t, seen[suffix], "suffix %s generated twice", suffix)
		seen[suffix] = true
	}
}

func TestValidateSuffix(t *testing.T) {
	tests := []struct {
		name    string
		suffix  string
		wantErr bool
	}{
		{name: "generated shape", suffix: "4f2a9c8d1e6b3a7f", wantErr: false},
		{name: "all digits", suffix: "0123456789012345", wantErr: false},
		{name: "too short", suffix: "4f2a9c8d", wantErr: true},
		{name: "too long", suffix: "4f2a9c8d1e6b3a7f0", wantErr: true},
		{name: "uppercase hex", suffix: "4F2A9C8D1E6B3A7F", wantErr: true},
		{name: "not hex", suffix: "4g2a9c8d1e6b3a7z", wantErr: true},
		{name: "empty", suffix: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSuffix(tt.suffix)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// A generated suffix always passes the pinned-suffix check, so a suffix
// read back from a template can be pinned verbatim.
func TestNewSuffix_RoundTrip(t *testing.T) {
	for i := 0; i < 20; i++ {
		suffix, err := NewSuffix()
		require.NoError(t, err)
		assert.NoError(t, validateSuffix(suffix))
	}
}
