package domain

import "errors"

// ErrUnknownBreak is returned when a break action name has no profile in the catalog.
var ErrUnknownBreak = errors.New("unknown break action")

// ErrInvalidProfile is returned when a break profile carries an out-of-range relief span.
var ErrInvalidProfile = errors.New("invalid break profile")
