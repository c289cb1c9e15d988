package mapper

import "github.com/a2-coder/dvmm/internal/domain"

// WithField prefixes the field path of err with field, so that a failure deep
// inside a nested record reads "roles[2].name" or "author.created_at".
// Errors that are not a bare *domain.OpError are wrapped with the field as
// context instead.
func WithField(field string, err error) error {
	return domain.PrefixPath(field, err)
}
