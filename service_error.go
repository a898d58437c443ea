package main

import "fmt"

// ServiceError records which step of a run failed: config, ppt, handout.
type ServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error prints "[config.Load] cause" so the failing step leads the line.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("[%s.%s] %v", e.Service, e.Operation, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// WrapError tags err with its step; nil stays nil so call sites can wrap
// unconditionally.
func WrapError(service, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{Service: service, Operation: operation, Err: err}
}
