package docgen

import (
	"fmt"
	"strings"
)

// Identity holds the derived, render-time keys of a schema
type Identity struct {
	// Navigation anchor, e.g. "[GET]/user"
	ID string

	// Human-readable route, e.g. "GET /user"
	Route string
}

// DeriveIdentity computes the id and route of a schema from its method and path.
// It is pure: the same inputs always yield the same Identity.
func DeriveIdentity(method, path string) (Identity, error) {
	if strings.TrimSpace(method) == "" {
		return Identity{}, fmt.Errorf("%w (path %q)", ErrMissingMethod, path)
	}
	if strings.TrimSpace(path) == "" {
		return Identity{}, fmt.Errorf("%w (method %q)", ErrMissingPath, method)
	}

	verb := strings.ToUpper(method)
	return Identity{
		ID:    "[" + verb + "]" + path,
		Route: verb + " " + path,
	}, nil
}
