package domain

import "errors"

// ErrInvitationNotFound returned by repository when no document match the identifier,
// identifier with invalid format is also not found
var ErrInvitationNotFound = errors.New("wedding invitation not found")
