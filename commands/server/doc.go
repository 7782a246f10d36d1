/*
Package server implements the init and start commands of the rental escrow
daemon. init writes the application state into an existing tendermint
genesis file, start runs the ABCI server until the process is signalled.
*/
package server
