/*
Package rentalescrow implements a two party rental escrow.

A guest books a stay by depositing funds into a vault. The vault is an
account controlled by a capability derived from the booking identifier, the
host and the guest. No private key exists for that capability, so nobody can
move the funds except this extension. Once the booking end date has passed,
the host withdraws the whole vault balance. The vault and the booking record
are then removed and their storage deposits are refunded to the guest.

There is no cancellation. The Cancelled booking state is reserved and no
message can reach it.
*/
package rentalescrow
