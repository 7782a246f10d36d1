package errors

import "fmt"

// FieldError reports the message or model field an error is about. Validate
// methods collect one per invalid field, so a client learns about every
// bad booking attribute in a single round trip.
type FieldError struct {
	Name string
	Err  error
}

// Field returns err labeled with the field name, or nil if err is nil. The
// optional description is formatted with args and wrapped around err.
func Field(name string, err error, description string, args ...interface{}) error {
	if errIsNil(err) {
		return nil
	}
	if description != "" {
		err = Wrap(err, fmt.Sprintf(description, args...))
	}
	return &FieldError{Name: name, Err: err}
}

// AppendField adds a field error for name to errs. A nil fieldErr is
// ignored.
func AppendField(errs error, name string, fieldErr error) error {
	return Append(errs, Field(name, fieldErr, ""))
}

func (e *FieldError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *FieldError) Cause() error {
	return e.Err
}

// FieldErrors walks the error tree and returns every error reported for the
// named field. Errors nested below a match are not inspected.
func FieldErrors(err error, name string) []error {
	if errIsNil(err) {
		return nil
	}
	switch e := err.(type) {
	case *FieldError:
		if e.Name == name {
			return []error{e}
		}
		return FieldErrors(e.Err, name)
	case unpacker:
		var found []error
		for _, sub := range e.Unpack() {
			found = append(found, FieldErrors(sub, name)...)
		}
		return found
	case causer:
		return FieldErrors(e.Cause(), name)
	}
	return nil
}
