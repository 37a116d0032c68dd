package match

import "errors"

// ErrUnknownProfile is returned when a search names a weight profile that
// was never registered.
var ErrUnknownProfile = errors.New("unknown weight profile")
