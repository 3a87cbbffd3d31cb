package models

import (
	"time"

	"github.com/example/inkwell/internal/utils"
)

// Account roles.
const (
	RoleUser     = "user"
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
	RoleVendor   = "vendor"
)

// User represents a registered account.
type User struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"default:user" json:"role"`

	IsVerified          bool       `json:"is_verified"`
	VerificationToken   string     `gorm:"index" json:"-"`
	VerificationExpires *time.Time `json:"-"`

	ResetToken   string     `gorm:"index" json:"-"`
	ResetExpires *time.Time `json:"-"`

	FailedAttempts int        `json:"-"`
	LockedUntil    *time.Time `json:"-"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	Orders []Order `json:"orders,omitempty"`
}

// IsLocked reports whether the account is locked out at the given time.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// ClearExpiredLock resets the lockout state once the lock window has passed,
// so a stale failure counter cannot re-lock the account on the next slip.
// Returns true when anything changed.
func (u *User) ClearExpiredLock(now time.Time) bool {
	if u.LockedUntil == nil || now.Before(*u.LockedUntil) {
		return false
	}
	u.LockedUntil = nil
	u.FailedAttempts = 0
	return true
}

// RegisterFailedLogin increments the failure counter and, once the threshold
// is reached, locks the account for lockFor. Returns true when this call
// caused the account to lock.
func (u *User) RegisterFailedLogin(now time.Time, threshold int, lockFor time.Duration) bool {
	u.FailedAttempts++
	if u.FailedAttempts >= threshold {
		until := now.Add(lockFor)
		u.LockedUntil = &until
		return true
	}
	return false
}

// RegisterSuccessfulLogin resets the lockout state and records the login time.
func (u *User) RegisterSuccessfulLogin(now time.Time) {
	u.FailedAttempts = 0
	u.LockedUntil = nil
	u.LastLogin = &now
}

// SetVerificationToken stores a fresh verification token expiring at the given time.
func (u *User) SetVerificationToken(token string, expires time.Time) {
	u.VerificationToken = token
	u.VerificationExpires = &expires
}

// ConsumeVerificationToken marks the account verified and clears the token
// fields. Returns false when the token is absent or already expired; an
// expired token is cleared as well, it just does not verify.
func (u *User) ConsumeVerificationToken(now time.Time) bool {
	if u.VerificationToken == "" || u.VerificationExpires == nil {
		return false
	}
	expired := utils.IsTokenExpired(now, *u.VerificationExpires)
	u.VerificationToken = ""
	u.VerificationExpires = nil
	if expired {
		return false
	}
	u.IsVerified = true
	return true
}

// SetResetToken stores a fresh password-reset token expiring at the given time.
func (u *User) SetResetToken(token string, expires time.Time) {
	u.ResetToken = token
	u.ResetExpires = &expires
}

// ConsumeResetToken applies a new password hash and clears the reset token
// fields. Returns false when the token is absent or already expired; an
// expired token is cleared without touching the password.
func (u *User) ConsumeResetToken(now time.Time, newHash string) bool {
	if u.ResetToken == "" || u.ResetExpires == nil {
		return false
	}
	expired := utils.IsTokenExpired(now, *u.ResetExpires)
	u.ResetToken = ""
	u.ResetExpires = nil
	if expired {
		return false
	}
	u.PasswordHash = newHash
	return true
}
