package types

import (
	"strings"
	"time"
)

type Created struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func joinOptionalPrefix(prefix string, path *string) *string {
	if path == nil {
		return nil
	}

	return new(JoinURL(prefix, *path))
}

// JoinURL prefixes a stored path. Absolute URLs are returned as they are.
func JoinURL(prefix, path string) string {
	if prefix == "" || strings.HasPrefix(path, prefix) || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}
