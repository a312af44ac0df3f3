package keys

import "errors"

// ErrQuery wraps every failure of [Parse] and [Keys.Ensure]. Lookup misses
// in [Keys.Resolve] are not errors.
var ErrQuery = errors.New("query error")
