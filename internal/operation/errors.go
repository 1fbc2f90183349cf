package operation

import (
	"errors"
	"fmt"
	"net"
)

// ErrUnknownSelect is returned for select expressions naming a field that does not exist.
var ErrUnknownSelect = errors.New("unknown select expression")

// NameResolutionError reports that the service endpoint host could not be resolved.
type NameResolutionError struct {
	Operation string
	Host      string
	Err       error
}

func (e *NameResolutionError) Error() string {
	return fmt.Sprintf("name resolution failure attempting to reach service for %s: cannot resolve %q, check network connectivity and the configured region or endpoint: %v",
		e.Operation, e.Host, e.Err)
}

func (e *NameResolutionError) Unwrap() error { return e.Err }

// Translate rewraps a DNS resolution failure into a NameResolutionError and returns every
// other error unchanged.
func Translate(operation string, err error) error {
	if err == nil {
		return nil
	}

	var resolved *NameResolutionError
	if errors.As(err, &resolved) {
		return err
	}

	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		return err
	}

	return &NameResolutionError{
		Operation: operation,
		Host:      dnsErr.Name,
		Err:       err,
	}
}
