package mcp

import (
	"errors"

	"github.com/filekit-dev/filekit-cli/internal/core/domain"
)

// Error kinds reported to tool callers. Hosts branch on these instead
// of matching message text.
const (
	kindNotFound              = "not_found"
	kindUnsupportedFormat     = "unsupported_format"
	kindDecodeFailure         = "decode_failure"
	kindCapabilityUnavailable = "capability_unavailable"
	kindInvalidInput          = "invalid_input"
	kindIOFailure             = "io_failure"
)

// OpStatus is the uniform result envelope carried by every tool
// output. Failures are reported in-band, never as protocol faults.
type OpStatus struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
}

// statusFor converts a service error into the wire envelope.
func statusFor(err error) OpStatus {
	if err == nil {
		return OpStatus{Success: true}
	}
	return OpStatus{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: errorKind(err),
	}
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return kindNotFound
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return kindUnsupportedFormat
	case errors.Is(err, domain.ErrDecodeFailure):
		return kindDecodeFailure
	case errors.Is(err, domain.ErrCapabilityUnavailable):
		return kindCapabilityUnavailable
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrTooLarge):
		return kindInvalidInput
	default:
		return kindIOFailure
	}
}
