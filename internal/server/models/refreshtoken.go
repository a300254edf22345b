package models

import "time"

type RefreshToken struct {
	UserID  string
	Token   string
	Expires time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}
