// internal/flaws/flaws_test.go
package flaws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "real newlines",
			text:     "🔧 Skærm\n🔧 Batteri",
			expected: []string{"🔧 Skærm", "🔧 Batteri"},
		},
		{
			name:     "literal backslash-n sequence",
			text:     `🔧 Skærm\n🔧 Batteri`,
			expected: []string{"🔧 Skærm", "🔧 Batteri"},
		},
		{
			name:     "forward slash",
			text:     "Skærm / Batteri",
			expected: []string{"Skærm", "Batteri"},
		},
		{
			name:     "mixed separators",
			text:     "Skærm\nBatteri/Kamera",
			expected: []string{"Skærm", "Batteri", "Kamera"},
		},
		{
			name:     "empty text",
			text:     "",
			expected: nil,
		},
		{
			name:     "only separators and whitespace",
			text:     " / \n / ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.text))
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Skærm", Clean("🔧 Skærm"))
	assert.Equal(t, "Skærm", Clean("  Skærm  "))
	assert.Equal(t, "", Clean("🔧"))
	assert.Equal(t, "Bagcover", Clean("🔧 Bagcover 🔧"))
}

func TestNewPartNames(t *testing.T) {
	t.Run("derives cleaned names", func(t *testing.T) {
		names := NewPartNames("🔧 Skærm\n🔧 Batteri", nil)
		assert.Equal(t, []string{"Skærm", "Batteri"}, names)
	})

	t.Run("dedup against existing is case-insensitive", func(t *testing.T) {
		names := NewPartNames("🔧 Skærm\n🔧 Batteri", []string{"skærm"})
		assert.Equal(t, []string{"Batteri"}, names)
	})

	t.Run("repeated derivation yields nothing new", func(t *testing.T) {
		text := "🔧 Skærm\n🔧 Batteri"
		first := NewPartNames(text, nil)
		second := NewPartNames(text, first)
		assert.Empty(t, second)
	})

	t.Run("marker-only lines are dropped", func(t *testing.T) {
		names := NewPartNames("🔧\n🔧 Batteri", nil)
		assert.Equal(t, []string{"Batteri"}, names)
	})

	t.Run("duplicates within the text survive", func(t *testing.T) {
		// Only existing parts are deduplicated; repeated lines in the
		// same text each produce a name, matching dashboard behavior.
		names := NewPartNames("Skærm/Skærm", nil)
		assert.Equal(t, []string{"Skærm", "Skærm"}, names)
	})
}
