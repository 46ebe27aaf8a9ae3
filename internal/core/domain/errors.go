package domain

import "go.trai.ch/zerr"

var (
	// ErrBadTransformer is returned for any transformer configuration
	// problem: a malformed spec, an unresolvable module or name, or a
	// resolved symbol that does not satisfy the transformer capability.
	ErrBadTransformer = zerr.New("invalid transformer configuration")

	// ErrBadEvent is returned when an inbound event record cannot be decoded.
	ErrBadEvent = zerr.New("malformed event record")
)
