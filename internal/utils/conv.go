package utils

import (
	"strconv"
)

// StringToInt parses s as a base-10 integer, falling back to 0 on bad input
// (query params, path ids).
func StringToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
