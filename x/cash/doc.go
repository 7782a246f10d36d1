/*
Package cash keeps account balances. An account holds a single currency and
is either plain, owned by whoever controls the condition hashing to its
address, or bound to a delegated authority condition.

Storing an account or any other record costs a storage deposit. The deposit
is taken from the payer in the native currency and refunded when the record
is removed.
*/
package cash
