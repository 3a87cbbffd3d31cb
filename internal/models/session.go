package models

import "time"

// RevokedSession is a denylist entry for a logged-out session token.
// Rows older than ExpiresAt match no live token and can be purged.
type RevokedSession struct {
	BaseModel
	TokenID   string    `gorm:"uniqueIndex" json:"token_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
