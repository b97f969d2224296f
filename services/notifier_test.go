package services

import (
	"testing"

	"giftcard-shop/models"

	"github.com/stretchr/testify/assert"
)

func TestInboxDropsOldest(t *testing.T) {
	b := NewInbox(2)
	b.Notify(models.Notification{Title: "a"})
	b.Notify(models.Notification{Title: "b"})
	b.Notify(models.Notification{Title: "c"})

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []models.Notification{{Title: "b"}, {Title: "c"}}, b.Drain())
	assert.Equal(t, 0, b.Len())
}

func TestInboxDrainEmpty(t *testing.T) {
	b := NewInbox(0)

	got := b.Drain()
	assert.NotNil(t, got)
	assert.Empty(t, got)

	b.Notify(models.Notification{Title: "only"})
	assert.Equal(t, 1, b.Len())
}

func TestNotifierFunc(t *testing.T) {
	var got models.Notification
	var n Notifier = NotifierFunc(func(x models.Notification) { got = x })

	n.Notify(models.Notification{Title: "t", Description: "d"})

	assert.Equal(t, models.Notification{Title: "t", Description: "d"}, got)
}
