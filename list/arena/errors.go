package arena

import "errors"

// ErrInvalidRef indicates a Ref that does not name an occupied slot: the
// index is outside the store, the slot is currently free, or the slot has
// been freed (and possibly reused) since the Ref was obtained.
var ErrInvalidRef = errors.New("arena: invalid ref")
