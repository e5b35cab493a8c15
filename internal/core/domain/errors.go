package domain

import "errors"

// Authentication and authorization outcomes. ErrUnauthenticated deliberately
// covers every verification failure (missing token, bad signature, expired,
// revoked, unknown subject) so the response never reveals which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already in use")
	ErrClientNotFound       = errors.New("client not found")
	ErrDeviceNotFound       = errors.New("device not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrAssetNotFound        = errors.New("asset not found")
	ErrAssetTagTaken        = errors.New("asset tag already in use")
	ErrAssetRequestNotFound = errors.New("asset request not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

var ErrInvalidInput = errors.New("invalid input")
