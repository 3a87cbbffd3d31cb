package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationMeta(t *testing.T) {
	pg := Pagination{Page: 1, Limit: 10}
	meta := pg.Meta(23)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(23), meta.TotalCount)
	assert.True(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
	assert.Equal(t, 10, meta.Limit)
}

func TestPaginationMetaLastPage(t *testing.T) {
	pg := Pagination{Page: 3, Limit: 10}
	meta := pg.Meta(23)

	assert.Equal(t, 3, meta.CurrentPage)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestPaginationMetaExactFit(t *testing.T) {
	pg := Pagination{Page: 2, Limit: 10}
	meta := pg.Meta(20)

	assert.Equal(t, 2, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.True(t, meta.HasPrevPage)
}

func TestPaginationMetaEmpty(t *testing.T) {
	pg := Pagination{Page: 1, Limit: 10}
	meta := pg.Meta(0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNextPage)
	assert.False(t, meta.HasPrevPage)
}
