package jobseq

import "fmt"

// AuthError is returned when the vendor rejects the configured
// credentials or the token endpoint cannot be reached.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %s", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ConnError wraps a transport-level failure. The underlying
// net error is reachable through Unwrap.
type ConnError struct {
	Err error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("connection failed: %s", e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// StatusError is returned whenever the vendor answers with a
// non-2xx status. Message holds the response body verbatim so the
// caller can see the vendor's own explanation.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("jobseq returned status %d", e.Code)
	}
	return fmt.Sprintf("jobseq returned status %d: %s", e.Code, e.Message)
}

// DecodeError is returned when a response body is not the JSON
// shape the analytic is documented to produce.
type DecodeError struct {
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode response: %s: %s", e.Detail, e.Err)
	}
	return fmt.Sprintf("decode response: %s", e.Detail)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MissingParamError is returned by an analytic method when a
// required parameter was left empty.
type MissingParamError struct {
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required parameter: %s", e.Param)
}
