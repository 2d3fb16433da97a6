package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListField(t *testing.T) {
	t.Run("parçalar trim edilir ve boş olanlar atılır", func(t *testing.T) {
		got := ParseListField("React, TypeScript, ,Go")
		assert.Equal(t, []string{"React", "TypeScript", "Go"}, got)
	})

	t.Run("boş metin boş liste döner", func(t *testing.T) {
		assert.Empty(t, ParseListField(""))
		assert.Empty(t, ParseListField(" , , "))
	})

	t.Run("tek eleman", func(t *testing.T) {
		assert.Equal(t, []string{"Go"}, ParseListField("  Go  "))
	})
}

func TestFormatListField(t *testing.T) {
	assert.Equal(t, "Go, Fiber", FormatListField([]string{"Go", "Fiber"}))
	assert.Equal(t, "", FormatListField(nil))
}

func TestListFieldRoundTrip(t *testing.T) {
	// Normalize edilmiş bir liste format-parse döngüsünden aynen çıkar.
	original := []string{"React", "TypeScript", "Go"}
	assert.Equal(t, original, ParseListField(FormatListField(original)))
}
