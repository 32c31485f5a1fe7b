package entity

import (
	"strings"
	"time"
)

// AuthorizationStatus mirrors the photo-library permission states.
type AuthorizationStatus string

const (
	AuthorizationAuthorized    AuthorizationStatus = "authorized"
	AuthorizationLimited       AuthorizationStatus = "limited"
	AuthorizationDenied        AuthorizationStatus = "denied"
	AuthorizationRestricted    AuthorizationStatus = "restricted"
	AuthorizationNotDetermined AuthorizationStatus = "notDetermined"
	AuthorizationUnknown       AuthorizationStatus = "unknown"
)

// ParseAuthorizationStatus accepts any casing; unrecognised values map to
// AuthorizationUnknown.
func ParseAuthorizationStatus(s string) AuthorizationStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "authorized":
		return AuthorizationAuthorized
	case "limited":
		return AuthorizationLimited
	case "denied":
		return AuthorizationDenied
	case "restricted":
		return AuthorizationRestricted
	case "notdetermined", "not_determined":
		return AuthorizationNotDetermined
	default:
		return AuthorizationUnknown
	}
}

// PermitsWrite reports whether a save may be attempted.
func (s AuthorizationStatus) PermitsWrite() bool {
	return s == AuthorizationAuthorized || s == AuthorizationLimited
}

// Asset describes one image stored in the photo library.
type Asset struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
