package sigv4

// MissingFieldError is returned when a Config field that is required for
// signing is empty.
type MissingFieldError struct {
	// Field is the name of the empty Config field.
	Field string
}

func (e *MissingFieldError) Error() string {
	return "sigv4: missing required field " + e.Field
}
