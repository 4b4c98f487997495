package models

import "time"

// StoredSession is the identity persisted between runs for one app id.
type StoredSession struct {
	AppID        string
	UserID       string
	Anonymous    bool
	RefreshToken string
	UpdatedAt    time.Time
}
