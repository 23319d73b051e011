package assess

// Error represents an assessment failure: client construction, the outbound
// generation request, or locating/parsing the JSON payload in the response.
// It carries a human-readable message and is always recoverable by the caller.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
