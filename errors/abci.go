package errors

import "reflect"

// internalCode is reported for any error that was not built from a
// registered Error, for example a stdlib or a database failure.
const internalCode uint32 = 1

// ABCIInfo returns the code and the log message of a tendermint response
// for err. A nil err is code 0 and an empty log.
//
// Outside of debug mode the message of an internal error or of a recovered
// panic is replaced with "internal error", so that node internals are not
// leaked to clients.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return 0, ""
	}
	code := abciCode(err)
	if !debug && (code == internalCode || ErrPanic.Is(err)) {
		return code, "internal error"
	}
	return code, err.Error()
}

// abciCode returns the code of the first error in the cause chain that has
// one.
func abciCode(err error) uint32 {
	type coder interface {
		ABCICode() uint32
	}
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return internalCode
}

// errIsNil also treats a typed nil pointer, like (*Error)(nil), as nil.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
