package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped with the name of the first required field
	// found empty.
	ErrMissingField = errors.New("required field is empty")
)
