// Package models defines server-side records persisted in Postgres.
package models

import "time"

// Owner scopes every letter read and write. Both fields come from a verified
// access token.
type Owner struct {
	AppID  string
	UserID string
}

// Letter is a message scheduled for future delivery. Letters are immutable
// once created; Sent is never flipped by this server.
//
// Content holds plaintext in memory only. Storage sees SealedContent and
// ContentNonce.
type Letter struct {
	ID                string
	AppID             string `validate:"required"`
	UserID            string `validate:"required"`
	Title             string `validate:"max=200"`
	Content           string `validate:"required,max=20000"`
	RecipientEmail    string `validate:"required,contains=@,max=320"`
	SenderName        string `validate:"max=200"`
	DeliveryTimestamp int64  `validate:"gt=0"`
	Sent              bool
	CreatedAt         time.Time

	SealedContent []byte
	ContentNonce  []byte
}

func (l *Letter) Owner() Owner {
	return Owner{AppID: l.AppID, UserID: l.UserID}
}
