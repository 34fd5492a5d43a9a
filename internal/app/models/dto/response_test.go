package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(1, 20, 42)
	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 20, info.PageSize)
	assert.Equal(t, int64(42), info.TotalItems)
	assert.Equal(t, 3, info.TotalPages)

	// Exact multiple does not add an extra page
	assert.Equal(t, 2, NewPaginationInfo(1, 20, 40).TotalPages)

	// Empty result still reports one page
	assert.Equal(t, 1, NewPaginationInfo(1, 20, 0).TotalPages)
}
