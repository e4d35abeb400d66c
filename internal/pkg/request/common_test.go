package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	t.Run("zero values get defaults", func(t *testing.T) {
		var p Pagination
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PageSize)
	})

	t.Run("negative values get defaults", func(t *testing.T) {
		p := Pagination{Page: -3, PageSize: -1}
		p.Normalize()
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PageSize)
	})

	t.Run("explicit values kept", func(t *testing.T) {
		p := Pagination{Page: 4, PageSize: 50}
		p.Normalize()
		assert.Equal(t, 4, p.Page)
		assert.Equal(t, 50, p.PageSize)
	})
}
