package utils

import (
	"testing"

	"vidtube.com/pkg/constants"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name     string
		pageNum  int64
		pageSize int64
		wantNum  int64
		wantSize int64
	}{
		{"ZeroDefaults", 0, 0, constants.DefaultPageNum, constants.DefaultPageSize},
		{"NegativeDefaults", -3, -1, constants.DefaultPageNum, constants.DefaultPageSize},
		{"PassThrough", 2, 25, 2, 25},
		{"ClampOversized", 1, 5000, 1, constants.MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotNum, gotSize := NormalizePage(tc.pageNum, tc.pageSize)
			assert.Equal(t, tc.wantNum, gotNum)
			assert.Equal(t, tc.wantSize, gotSize)
		})
	}
}

func TestPageOffset(t *testing.T) {
	assert.EqualValues(t, 0, PageOffset(1, 10))
	assert.EqualValues(t, 30, PageOffset(4, 10))
}
