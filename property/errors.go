package property

import "errors"

var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrInvalidValue    = errors.New("invalid property value")
	ErrShorthand       = errors.New("invalid shorthand value")
)
