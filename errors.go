package theft

import "errors"

var (
	ErrNoProperty   = errors.New("theft: config has no property function")
	ErrNoTypeInfo   = errors.New("theft: config has no argument type info")
	ErrMissingAlloc = errors.New("theft: type info has no Alloc callback")
	ErrArityRange   = errors.New("theft: too many argument positions")
	ErrTrialsRange  = errors.New("theft: trial count is negative")
	ErrClosed       = errors.New("theft: engine is closed")
	ErrProperty     = errors.New("theft: property reported an error")
)
