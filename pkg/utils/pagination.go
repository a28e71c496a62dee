package utils

import "vidtube.com/pkg/constants"

// NormalizePage clamps page parameters to sane values. Page numbers are
// 1-based everywhere.
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum < 1 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return pageNum, pageSize
}

// PageOffset converts 1-based page parameters into a row offset.
func PageOffset(pageNum, pageSize int64) int {
	return int((pageNum - 1) * pageSize)
}
