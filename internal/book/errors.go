package book

import "errors"

// Sentinel errors for caller-checkable conditions.
var (
	ErrNotFound   = errors.New("book: contact not found")
	ErrDuplicate  = errors.New("book: contact already exists")
	ErrNoBirthday = errors.New("book: no birthday set")
)

// ValidationKind identifies which field failed validation.
type ValidationKind string

const (
	InvalidName     ValidationKind = "name"
	InvalidPhone    ValidationKind = "phone"
	InvalidBirthday ValidationKind = "birthday"
)

// ValidationError reports a malformed name, phone, or birthday string.
// The Reason is suitable for showing to the user as-is.
type ValidationError struct {
	Kind   ValidationKind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
