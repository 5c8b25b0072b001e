// Package id handles the numeric identifiers used across the store.
package id

import "strconv"

func Valid(id int64) bool {
	return id > 0
}

// Parse reads a positive decimal identifier.
func Parse(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, Valid(id)
}
