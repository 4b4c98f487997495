package models

import "time"

// User is an identity issued by the server. Anonymous users are created on
// demand; custom-token users keep the id carried by their bootstrap token.
type User struct {
	ID        string
	Anonymous bool
	CreatedAt time.Time
}
