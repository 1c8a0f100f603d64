package nn

import (
	"github.com/pkg/errors"
)

// Common errors.
var (
	ErrInvalidConfiguration = errors.New("invalid network configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrCallOrder            = errors.New("operation called out of order")
	ErrUnknownActivation    = errors.New("unknown activation")
	ErrUnknownCriterion     = errors.New("unknown criterion")
)
