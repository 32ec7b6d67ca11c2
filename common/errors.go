package common

import "errors"

var ErrKeyFormat = errors.New("unsupported key format")
var ErrUnsupportedCurve = errors.New("unsupported curve")
var ErrInvalidClaims = errors.New("invalid claims")
var ErrMissingRequestContext = errors.New("missing request context")
var ErrInvalidInput = errors.New("bad input")
