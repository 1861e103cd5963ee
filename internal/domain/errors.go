package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPreferences is returned when a preferences update fails validation
	ErrInvalidPreferences = errors.New("invalid preferences")
	// ErrNotConnected is returned by commands issued while no session is live
	ErrNotConnected = errors.New("not connected")
)

// ConnectionError reports a failed connect, query or transport command.
// It is recovered by entering the Disconnected state.
type ConnectionError struct {
	Op   string
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	if e.Addr == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// CloseError reports a failed best-effort cleanup. It is always logged and never returned upward.
type CloseError struct {
	Err error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("close session: %v", e.Err)
}

func (e *CloseError) Unwrap() error {
	return e.Err
}

// InitializationError reports a startup failure that leaves no tray presence.
type InitializationError struct {
	Component string
	Err       error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %v", e.Component, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
