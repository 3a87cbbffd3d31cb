package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInboxFullBoundary(t *testing.T) {
	// With 99 stored, the 100th submission is accepted; with 100 stored,
	// the 101st is rejected.
	assert.False(t, inboxFull(99, 100))
	assert.True(t, inboxFull(100, 100))
	assert.True(t, inboxFull(101, 100))
	assert.False(t, inboxFull(0, 100))
}
