package fumen

// DecodeError is returned by Decode when the input is not a valid
// v115 fumen string. Its Error() text carries no detail beyond the
// fixed message: spec-compatible decoders in the wild give none
// either. The failing component's detail, when there is one, is still
// reachable via errors.Unwrap.
type DecodeError struct {
	cause error
}

func (DecodeError) Error() string {
	return "the string does not contain valid fumen data"
}

func (e DecodeError) Unwrap() error {
	return e.cause
}

var errMalformed = DecodeError{}
