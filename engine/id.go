package engine

import (
	"fmt"
	"strings"
)

// ID is the fully-qualified identity of a registry entry, written as
// "namespace:path". No other format is accepted.
type ID struct {
	Namespace string
	Path      string
}

// NewID validates both parts and returns the composed ID.
func NewID(namespace, path string) (ID, error) {
	if err := validatePart(namespace, false); err != nil {
		return ID{}, fmt.Errorf("invalid namespace %q: %w", namespace, err)
	}
	if err := validatePart(path, true); err != nil {
		return ID{}, fmt.Errorf("invalid path %q: %w", path, err)
	}
	return ID{Namespace: namespace, Path: path}, nil
}

// ParseID parses a "namespace:path" string.
func ParseID(s string) (ID, error) {
	namespace, path, ok := strings.Cut(s, ":")
	if !ok {
		return ID{}, fmt.Errorf("id %q is not of the form namespace:path", s)
	}
	if strings.Contains(path, ":") {
		return ID{}, fmt.Errorf("id %q contains more than one ':'", s)
	}
	return NewID(namespace, path)
}

// MustID is NewID for statically-known identifiers; it panics on invalid
// input.
func MustID(namespace, path string) ID {
	id, err := NewID(namespace, path)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders the canonical "namespace:path" form.
func (id ID) String() string {
	return id.Namespace + ":" + id.Path
}

// validatePart checks the identifier charset: lowercase letters, digits,
// '_', '-' and '.'; paths additionally allow '/' separators.
func validatePart(s string, allowSlash bool) error {
	if s == "" {
		return fmt.Errorf("must not be empty")
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		case r == '/' && allowSlash:
		default:
			return fmt.Errorf("disallowed character %q", r)
		}
	}
	return nil
}
