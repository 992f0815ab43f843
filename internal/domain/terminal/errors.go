package terminal

import "errors"

var (
	// ErrTerminalNotFound indicates the terminal does not exist.
	ErrTerminalNotFound = errors.New("terminal not found")
	// ErrTerminalInactive indicates the terminal has been deactivated.
	ErrTerminalInactive = errors.New("terminal is inactive")
	// ErrInvalidSettings indicates malformed terminal settings.
	ErrInvalidSettings = errors.New("invalid terminal settings")
	// ErrInvalidName indicates a missing or malformed terminal name.
	ErrInvalidName = errors.New("invalid terminal name")
)
