package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShareLinkExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	open := ShareLink{Active: true}
	assert.False(t, open.IsExpired(now), "a link without expiry never expires")
	assert.True(t, open.IsAccessible(now))

	expiresAt := now.Add(time.Hour)
	timed := ShareLink{Active: true, ExpiresAt: &expiresAt}
	assert.True(t, timed.IsAccessible(now))
	assert.True(t, timed.IsAccessible(expiresAt), "the boundary instant is still inside the window")
	assert.False(t, timed.IsAccessible(expiresAt.Add(time.Second)))
}

func TestShareLinkInactive(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	link := ShareLink{Active: false}
	assert.False(t, link.IsAccessible(now), "deactivation wins regardless of expiry")
}
