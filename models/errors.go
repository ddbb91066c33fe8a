package models

// ValidationError marks input that must be rejected with a 400 response.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// ErrValidation wraps msg as a ValidationError.
func ErrValidation(msg string) error { return ValidationError(msg) }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
