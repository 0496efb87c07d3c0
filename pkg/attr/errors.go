package attr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAttribute reports a name that resolves neither to a static
	// attribute nor to a data attribute.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrInvalidAttributeValue reports a value that satisfies none of the
	// grammars permitted by the attribute's Type.
	ErrInvalidAttributeValue = errors.New("invalid attribute value")

	// ErrInvalidTag reports an unknown tag name. It also matches
	// ErrInvalidAttribute under errors.Is.
	ErrInvalidTag = fmt.Errorf("invalid tag: %w", ErrInvalidAttribute)
)

// UnknownFlagError is returned by ParseType for an unrecognized flag name.
type UnknownFlagError struct {
	Name string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown attribute type flag %q", e.Name)
}
