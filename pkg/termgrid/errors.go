package termgrid

import "errors"

// Session open failures.
var (
	// ErrLocked is returned by Open when another Session is already live in
	// this process. The caller may retry after closing the other session.
	ErrLocked = errors.New("terminal is already in use by another session")

	ErrUnsupportedTerminal = errors.New("unsupported terminal")
	ErrFailedToOpenDevice  = errors.New("failed to open terminal device")
	ErrPipeTrap            = errors.New("pipe trap error")
)

// Decode failures. These indicate a contract mismatch with the driver, not a
// recoverable runtime condition.
var (
	ErrUnknownEvent       = errors.New("unrecognized event kind")
	ErrUnknownMouseButton = errors.New("unknown mouse button")
	ErrUnknownInputMode   = errors.New("unknown input mode")
	ErrUnknownOutputMode  = errors.New("unknown output mode")
)

// ErrClosed is returned by operations that need a live driver when the
// session has already been closed.
var ErrClosed = errors.New("session is closed")
