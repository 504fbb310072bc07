package models

// Identity is the messaging-platform identity of whoever sent a request.
// TGID is the stable key; username and name are display-only.
type Identity struct {
	TGID     int64  `json:"tgId"`
	Username string `json:"tgUsername,omitempty"`
	Name     string `json:"tgName,omitempty"`
}

// TokenPayload is the verified content of an auth token.
type TokenPayload struct {
	Identity Identity
}
