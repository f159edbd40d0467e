package jumptable

import "errors"

// ErrUnknownHand names the case of a canonical key that was not produced
// by the same enumeration the table was built from. No function in this
// package returns it: perfectHash.find does not detect such keys, and a
// lookup of one yields an arbitrary index.
var ErrUnknownHand = errors.New("jumptable: hand not present in table")
