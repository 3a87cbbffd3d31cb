package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockoutAfterRepeatedFailures(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}

	for i := 0; i < 4; i++ {
		locked := u.RegisterFailedLogin(now, 5, 2*time.Hour)
		assert.False(t, locked, "attempt %d should not lock", i+1)
		assert.False(t, u.IsLocked(now))
	}

	locked := u.RegisterFailedLogin(now, 5, 2*time.Hour)
	assert.True(t, locked, "5th failure locks the account")
	require.NotNil(t, u.LockedUntil)
	assert.Equal(t, now.Add(2*time.Hour), *u.LockedUntil)

	// Still locked just before expiry, unlocked at expiry.
	assert.True(t, u.IsLocked(now.Add(2*time.Hour-time.Second)))
	assert.False(t, u.IsLocked(now.Add(2*time.Hour)))
}

func TestSuccessfulLoginResetsLockout(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	for i := 0; i < 5; i++ {
		u.RegisterFailedLogin(now, 5, 2*time.Hour)
	}
	require.True(t, u.IsLocked(now))

	after := now.Add(3 * time.Hour)
	u.RegisterSuccessfulLogin(after)

	assert.Equal(t, 0, u.FailedAttempts)
	assert.Nil(t, u.LockedUntil)
	require.NotNil(t, u.LastLogin)
	assert.Equal(t, after, *u.LastLogin)
}

func TestVerificationTokenSingleUse(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	u.SetVerificationToken("tok", now.Add(3*time.Minute))

	require.True(t, u.ConsumeVerificationToken(now))
	assert.True(t, u.IsVerified)
	assert.Empty(t, u.VerificationToken)
	assert.Nil(t, u.VerificationExpires)

	// Second consumption fails: the token was cleared on success.
	assert.False(t, u.ConsumeVerificationToken(now))
}

func TestVerificationTokenExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	u.SetVerificationToken("tok", now.Add(3*time.Minute))

	// Exactly at expiry counts as expired; the dead token is cleared but
	// the account stays unverified.
	assert.False(t, u.ConsumeVerificationToken(now.Add(3*time.Minute)))
	assert.False(t, u.IsVerified)
	assert.Empty(t, u.VerificationToken)
	assert.Nil(t, u.VerificationExpires)
}

func TestResetTokenConsumption(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{PasswordHash: "old"}
	u.SetResetToken("tok", now.Add(time.Hour))

	require.True(t, u.ConsumeResetToken(now, "new"))
	assert.Equal(t, "new", u.PasswordHash)
	assert.Empty(t, u.ResetToken)
	assert.Nil(t, u.ResetExpires)

	assert.False(t, u.ConsumeResetToken(now, "newer"))
	assert.Equal(t, "new", u.PasswordHash)
}

func TestResetTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{PasswordHash: "old"}
	u.SetResetToken("tok", now.Add(time.Hour))

	// An expired token never changes the password, but it is still cleared.
	assert.False(t, u.ConsumeResetToken(now.Add(2*time.Hour), "new"))
	assert.Equal(t, "old", u.PasswordHash)
	assert.Empty(t, u.ResetToken)
	assert.Nil(t, u.ResetExpires)
}

func TestClearExpiredLock(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	u := &User{}
	for i := 0; i < 5; i++ {
		u.RegisterFailedLogin(now, 5, 2*time.Hour)
	}
	require.True(t, u.IsLocked(now))

	// While the lock holds, nothing changes.
	assert.False(t, u.ClearExpiredLock(now.Add(time.Hour)))
	assert.Equal(t, 5, u.FailedAttempts)

	// Once the window passes, both the lock and the counter go, so one
	// wrong password afterwards does not re-lock the account.
	assert.True(t, u.ClearExpiredLock(now.Add(2*time.Hour)))
	assert.Equal(t, 0, u.FailedAttempts)
	assert.Nil(t, u.LockedUntil)

	locked := u.RegisterFailedLogin(now.Add(2*time.Hour), 5, 2*time.Hour)
	assert.False(t, locked)
	assert.False(t, u.IsLocked(now.Add(2*time.Hour)))
}

func TestEnumValidators(t *testing.T) {
	assert.True(t, ValidOrderStatus("pending"))
	assert.True(t, ValidOrderStatus("cancelled"))
	assert.False(t, ValidOrderStatus("shipped"))

	assert.True(t, ValidPaymentStatus("paid"))
	assert.False(t, ValidPaymentStatus("refunded"))

	assert.True(t, ValidCollectionMethod("pickup"))
	assert.True(t, ValidCollectionMethod("delivery"))
	assert.False(t, ValidCollectionMethod("mail"))

	assert.True(t, ValidPaperSize("A4"))
	assert.False(t, ValidPaperSize("a4"))
	assert.True(t, ValidBinding("spiral"))
	assert.False(t, ValidBinding("glue"))
	assert.True(t, ValidUrgency("express"))
	assert.False(t, ValidUrgency("asap"))
	assert.True(t, ValidPrintStatus("printing"))
	assert.False(t, ValidPrintStatus("queued"))
}
