package utils

import (
	"strconv"
)

// ParseID converts a route or query parameter to an entity id. Ids are
// positive; zero and garbage both report failure.
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
