package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page Page
		want Page
	}{
		{"zero values take defaults", Page{}, Page{Number: 1, PerPage: 50}},
		{"negative values take defaults", Page{Number: -3, PerPage: -1}, Page{Number: 1, PerPage: 50}},
		{"in range is kept", Page{Number: 4, PerPage: 20}, Page{Number: 4, PerPage: 20}},
		{"oversized page is capped", Page{Number: 2, PerPage: 1_000_000}, Page{Number: 2, PerPage: MaxPerPage}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.page.Normalize(50), tt.name)
	}
}

func TestPage_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Page{Number: 1, PerPage: 50}.Offset())
	assert.Equal(t, 100, Page{Number: 3, PerPage: 50}.Offset())

	huge := Page{Number: math.MaxInt, PerPage: math.MaxInt}.Normalize(50)
	assert.Equal(t, math.MaxInt, huge.Offset())
	assert.GreaterOrEqual(t, Page{Number: math.MaxInt / 2, PerPage: MaxPerPage}.Offset(), 0)
}
