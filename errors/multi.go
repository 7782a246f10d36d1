package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If only one non nil error is provided, it is returned directly. Otherwise
// a collection error is returned that reports the ABCI code of the first
// error and matches every contained error when tested with Is.
func Append(errs ...error) error {
	var list []error
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if m, ok := e.(*multiErr); ok {
			list = append(list, m.errs...)
			continue
		}
		list = append(list, e)
	}

	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	default:
		return &multiErr{errs: list}
	}
}

type multiErr struct {
	errs []error
}

func (e *multiErr) Error() string {
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n%s", len(e.errs), strings.Join(msgs, "\n"))
}

// Unpack returns all clubbed errors.
func (e *multiErr) Unpack() []error {
	return e.errs
}

// ABCICode returns the code of the first error in the collection.
func (e *multiErr) ABCICode() uint32 {
	return abciCode(e.errs[0])
}
