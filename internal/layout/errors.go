package layout

import "errors"

var (
	// ErrInvalidUsage reports a collaborator bug, such as setting a divider's
	// thickness or addressing a panel that does not exist.
	ErrInvalidUsage = errors.New("invalid usage")

	// ErrOutOfRange is wrapped together with ErrInvalidUsage for bad indices.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInconsistent is returned by Validate when an invariant does not hold.
	ErrInconsistent = errors.New("inconsistent layout")
)
