package fieldwire

import "errors"

var (
	errShortField = errors.New("fieldwire: input ends inside a field block")
	errOverrun    = errors.New("fieldwire: run length overruns the 240-cell grid")
)
