package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyMessage     = errors.New("message is required")
	ErrMessageTooLong   = errors.New("message is too long")
	ErrEmptyQuestion    = errors.New("question is required")
	ErrEmptyAnswer      = errors.New("answer is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidStatus    = errors.New("invalid knowledge status")
	ErrEmptyKeyword     = errors.New("search keyword is required")
	ErrInvalidSkip      = errors.New("skip must not be negative")
	ErrInvalidLimit     = errors.New("limit is out of range")
)
