package bot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyResponded is returned when a response that has to be the first
// is attempted on an interaction that already has an initial response.
// Callers that still need to send something should use Reply, which
// transparently falls back to a followup message.
var ErrAlreadyResponded = errors.New("interaction already has an initial response")

// MissingPermissionsError is returned by InteractionHandle.CheckPermissions
// when the bot lacks some of the required permissions. Permissions holds
// only the missing bits.
type MissingPermissionsError struct {
	Permissions int64
}

// Error implements the error interface.
func (e *MissingPermissionsError) Error() string {
	return fmt.Sprintf(
		"missing required permissions: %s",
		strings.Join(PermissionNames(e.Permissions), ", "),
	)
}
