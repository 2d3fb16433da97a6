package turkishsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "istanbul", Fold("İstanbul"))
	assert.Equal(t, "isik", Fold("IŞIK"))
	assert.Equal(t, "gorusme", Fold("GÖRÜŞME"))
	assert.Equal(t, "cagri", Fold("Çağrı"))
}

func TestContains(t *testing.T) {
	t.Run("büyük/küçük harf bağımsız", func(t *testing.T) {
		assert.True(t, Contains("Mobile Banking App", "mobile"))
		assert.True(t, Contains("mobil uygulama", "MOBİL"))
	})

	t.Run("boş needle her zaman eşleşir", func(t *testing.T) {
		assert.True(t, Contains("herhangi bir şey", ""))
		assert.True(t, Contains("", ""))
	})

	t.Run("eşleşmeyen metin", func(t *testing.T) {
		assert.False(t, Contains("Backend API", "mobile"))
	})
}

func TestContainsAny(t *testing.T) {
	tags := []string{"Go", "PostgreSQL", "Docker"}
	assert.True(t, ContainsAny(tags, "postgres"))
	assert.False(t, ContainsAny(tags, "react"))
	assert.False(t, ContainsAny(nil, "go"))
}
