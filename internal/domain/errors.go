package domain

import "errors"

// ErrNotConfigured is returned by outbound adapters whose endpoint or
// credential is absent. It is a normal condition, not a failure: callers
// with a deterministic fallback route around it.
var ErrNotConfigured = errors.New("llm service not configured")

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// ValidationErr represents an error when input validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ModelUnavailableErr means the embedding provider or the trained classifier
// is not ready to serve a request.
type ModelUnavailableErr struct {
	domainErr
}

// NewModelUnavailableErr creates a new ModelUnavailableErr with the given message.
func NewModelUnavailableErr(message string) *ModelUnavailableErr {
	return &ModelUnavailableErr{
		domainErr: domainErr{message: message},
	}
}

// ExternalServiceErr means the generative language service was reached but
// returned an error, or was unreachable. Quota marks rate-limit/quota
// exhaustion; it changes how the error is logged, not how it is handled.
type ExternalServiceErr struct {
	domainErr
	Quota bool
}

// NewExternalServiceErr creates a new ExternalServiceErr with the given message.
func NewExternalServiceErr(message string, quota bool) *ExternalServiceErr {
	return &ExternalServiceErr{
		domainErr: domainErr{message: message},
		Quota:     quota,
	}
}

// MalformedResponseErr means the generative language service replied with
// text that is not valid structured data. It is surfaced to the caller and
// never retried.
type MalformedResponseErr struct {
	domainErr
}

// NewMalformedResponseErr creates a new MalformedResponseErr with the given message.
func NewMalformedResponseErr(message string) *MalformedResponseErr {
	return &MalformedResponseErr{
		domainErr: domainErr{message: message},
	}
}
