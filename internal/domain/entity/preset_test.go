package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
)

func TestNewFormatPreset(t *testing.T) {
	t.Run("Valid preset", func(t *testing.T) {
		p, err := NewFormatPreset("iso-short", "YYYY-MM-DD")
		assert.NoError(t, err)
		assert.Equal(t, "iso-short", p.Name)
		assert.Equal(t, "YYYY-MM-DD", p.Format)
	})

	t.Run("Invalid presets", func(t *testing.T) {
		testCases := []struct {
			name        string
			presetName  string
			format      string
			expectedErr error
		}{
			{"empty name", "", "YYYY-MM-DD", errs.ErrInvalidPresetName},
			{"name with spaces", "my preset", "YYYY-MM-DD", errs.ErrInvalidPresetName},
			{"name with slash", "a/b", "YYYY-MM-DD", errs.ErrInvalidPresetName},
			{"name too long", strings.Repeat("x", MaxPresetNameLength+1), "YYYY-MM-DD", errs.ErrInvalidPresetName},
			{"format without tokens", "plain", "@#$ %! ()", errs.ErrInvalidFormat},
			{"empty format", "empty", "", errs.ErrInvalidFormat},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := NewFormatPreset(tc.presetName, tc.format)
				assert.Nil(t, p)
				assert.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})

	t.Run("Name at the length limit is accepted", func(t *testing.T) {
		_, err := NewFormatPreset(strings.Repeat("x", MaxPresetNameLength), "DD MMM YYYY")
		assert.NoError(t, err)
	})
}
