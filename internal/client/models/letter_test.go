package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLetter_DeliveryTime(t *testing.T) {
	ts := time.Date(2031, 5, 6, 7, 8, 0, 0, time.UTC)
	l := Letter{DeliveryTimestamp: ts.UnixMilli()}

	tokyo := time.FixedZone("JST", 9*3600)
	got := l.DeliveryTime(tokyo)

	assert.True(t, got.Equal(ts))
	assert.Equal(t, 16, got.Hour())
	assert.Equal(t, tokyo, got.Location())
}
