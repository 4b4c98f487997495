// Package models defines client-side data shapes.
package models

import "time"

// Letter is a pending letter as the client sees it.
type Letter struct {
	ID                string
	Title             string
	Content           string
	RecipientEmail    string
	SenderName        string
	DeliveryTimestamp int64
	Sent              bool
	CreatedAt         time.Time
}

// DeliveryTime returns the delivery timestamp as a time in loc.
func (l Letter) DeliveryTime(loc *time.Location) time.Time {
	return time.UnixMilli(l.DeliveryTimestamp).In(loc)
}
