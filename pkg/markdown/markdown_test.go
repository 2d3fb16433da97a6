package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	t.Run("markdown HTML'e çevrilir", func(t *testing.T) {
		out := string(ToHTML("# Başlık\n\nBir **kalın** metin."))
		assert.Contains(t, out, "<h1>")
		assert.Contains(t, out, "<strong>kalın</strong>")
	})

	t.Run("script etiketi temizlenir", func(t *testing.T) {
		out := string(ToHTML("Merhaba <script>alert(1)</script> dünya"))
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "Merhaba")
	})

	t.Run("GFM tablosu desteklenir", func(t *testing.T) {
		out := string(ToHTML("| a | b |\n|---|---|\n| 1 | 2 |"))
		assert.Contains(t, out, "<table>")
	})
}
