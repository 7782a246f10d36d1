/*
Package errors implements custom error interfaces for rentweave.

Error declarations should be generic and cover broad range of cases. Each
returned error instance can wrap a generic error declaration to provide more
details.

This package provides a broad range of errors declared that fits all common
cases. If an error is very specific for an extension it can be registered
outside of the errors package. To do so, use the Register function and keep
the code range reserved for that extension.

	var ErrNoBooking = errors.Register(2100, "no booking")

Each error instance should wrap one of the registered root errors so that the
ABCI code can be extracted and so that tests can use the Is method to match
errors:

	err := errors.Wrapf(ErrNoBooking, "id %q", id)
	if ErrNoBooking.Is(err) { ... }
*/
package errors
