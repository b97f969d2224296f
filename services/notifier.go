package services

import (
	"giftcard-shop/libs"
	"giftcard-shop/models"
)

type Notifier interface {
	Notify(n models.Notification)
}

type NotifierFunc func(n models.Notification)

func (f NotifierFunc) Notify(n models.Notification) {
	f(n)
}

// Inbox keeps the most recent notifications for one session until they are drained.
// Not safe for concurrent use on its own.
type Inbox struct {
	limit   int
	pending []models.Notification
}

func NewInbox(limit int) *Inbox {
	if limit <= 0 {
		limit = 1
	}
	return &Inbox{limit: limit}
}

func (b *Inbox) Notify(n models.Notification) {
	if len(b.pending) == b.limit {
		b.pending = append(b.pending[:0], b.pending[1:]...)
	}
	b.pending = append(b.pending, n)
}

func (b *Inbox) Len() int {
	return len(b.pending)
}

func (b *Inbox) Drain() []models.Notification {
	out := b.pending
	b.pending = nil
	if out == nil {
		return []models.Notification{}
	}
	return out
}

// loggingNotifier forwards to next after writing the notification to the log.
func loggingNotifier(logger *libs.Logger, next Notifier) Notifier {
	return NotifierFunc(func(n models.Notification) {
		logger.Info("notification", "title", n.Title, "description", n.Description)
		next.Notify(n)
	})
}
