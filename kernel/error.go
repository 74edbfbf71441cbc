package kernel

// Error describes a fatal kernel error. Errors of this kind indicate a
// violated invariant or a misconfigured device; the kernel layer is expected
// to treat them as non-recoverable and halt. All kernel errors must be
// defined as global variables that are pointers to the Error structure so
// that raising one never allocates.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
