package stnbuilder

import "errors"

// ErrTooFewNodes is returned when a topology is asked for fewer nodes than
// it needs to be well-formed.
var ErrTooFewNodes = errors.New("stnbuilder: too few nodes")
