/*
Package sigs provides basic authentication middleware to verify the ed25519
signatures on the transaction, and maintain a sequence per signer for replay
protection.
*/
package sigs
