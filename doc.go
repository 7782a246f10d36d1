/*
Package rentweave defines the interfaces shared by the rental escrow
application: storage, transactions, messages, handlers and decorators. It also
contains the authorization primitives (Condition and Address) and helpers to
pass block information through context.Context.

We pass context through context.Context between app, middleware, and
handlers. There exist two functions for every value of type T that we want to
support in Context:

	WithXYZ(Context, T) Context
	GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting the value (eg. height, header).
*/
package rentweave
