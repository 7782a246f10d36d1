/*
Package app contains the ABCI application glue: a message router, decorator
chains, the committed state with its check and deliver caches, and the
BaseApp dispatching CheckTx and DeliverTx to a handler.
*/
package app
