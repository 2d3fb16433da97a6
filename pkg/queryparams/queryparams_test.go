package queryparams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParamsValidate(t *testing.T) {
	t.Run("sıfır değerler varsayılana çekilir", func(t *testing.T) {
		p := ListParams{}
		p.Validate()
		assert.Equal(t, DefaultPage, p.Page)
		assert.Equal(t, DefaultPerPage, p.PerPage)
		assert.Equal(t, DefaultOrderBy, p.OrderBy)
	})

	t.Run("üst sınır aşımı varsayılana düşer", func(t *testing.T) {
		p := ListParams{Page: 2, PerPage: MaxPerPage + 1, OrderBy: "desc"}
		p.Validate()
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, DefaultPerPage, p.PerPage)
		assert.Equal(t, "desc", p.OrderBy)
	})
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 10}
	assert.Equal(t, 20, p.CalculateOffset())
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}
