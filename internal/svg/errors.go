package svg

import "github.com/pkg/errors"

// Parse errors. Returned errors wrap one of these; test with errors.Is.
var (
	ErrInvalidDocument  = errors.New("svg: invalid document")
	ErrInvalidSize      = errors.New("svg: invalid document size")
	ErrNestingTooDeep   = errors.New("svg: element nesting too deep")
	ErrInvalidAttribute = errors.New("svg: invalid attribute")
	ErrInvalidNumber    = errors.New("svg: invalid number")
	ErrInvalidColor     = errors.New("svg: invalid color")
	ErrInvalidPathData  = errors.New("svg: invalid path data")
)
