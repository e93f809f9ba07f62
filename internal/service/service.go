// Package service contains the validation and query-building layer.
// Services turn untrusted request input into fully determined
// repository calls, or fail fast with a typed apperror before any
// storage access happens.
package service

import (
	"strconv"

	"github.com/mvasquez/newsboard/internal/apperror"
)

// parseID validates a path identifier. It must parse as a positive
// integer; anything else is a 400 before storage is touched. A
// well-formed id with no matching row is a separate condition (404)
// detected only after querying.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Bad Request")
	}
	return id, nil
}
