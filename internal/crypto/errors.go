package crypto

import "errors"

// ErrSaltGeneration is returned when the random source cannot supply a salt.
var ErrSaltGeneration = errors.New("failed to generate salt")
