package domain

import (
	"errors"
	"fmt"
	"strings"
)

// JoinPath appends a field path to prefix: "roles" + "[2].name" gives
// "roles[2].name" and "author" + "created_at" gives "author.created_at".
func JoinPath(prefix, path string) string {
	switch {
	case prefix == "":
		return path
	case path == "":
		return prefix
	case strings.HasPrefix(path, "["):
		return prefix + path
	default:
		return prefix + "." + path
	}
}

// PrefixPath prefixes the field path of err with field. Only an *OpError
// returned as is gets its Path rewritten; any other error, including one that
// wraps an *OpError, is wrapped with the field so outer context survives.
func PrefixPath(field string, err error) error {
	if err == nil {
		return nil
	}
	var oe *OpError
	if !errors.As(err, &oe) || error(oe) != err {
		return fmt.Errorf("%s: %w", field, err)
	}
	cp := *oe
	cp.Path = JoinPath(field, oe.Path)
	return &cp
}
