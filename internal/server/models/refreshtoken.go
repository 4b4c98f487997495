package models

import "time"

type RefreshToken struct {
	UserID  string
	AppID   string
	Token   string
	Expires time.Time
}
