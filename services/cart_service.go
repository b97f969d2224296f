package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"giftcard-shop/libs"
	"giftcard-shop/models"
	"giftcard-shop/repositories"
	"giftcard-shop/utils"
)

type cartSession struct {
	mu       sync.Mutex
	store    *CartStore
	inbox    *Inbox
	latest   *models.Notification
	lastSeen time.Time
}

// CartService keeps one in-memory cart per browser session. Operations on the same session
// are applied one at a time in arrival order.
type CartService struct {
	mu       sync.Mutex
	sessions map[string]*cartSession

	catalog   repositories.CatalogRepository
	formatter *utils.CurrencyFormatter
	logger    *libs.Logger
	ttl       time.Duration
	backlog   int
	now       func() time.Time
}

func NewCartService(catalog repositories.CatalogRepository, formatter *utils.CurrencyFormatter, logger *libs.Logger, ttl time.Duration, backlog int) *CartService {
	return &CartService{
		sessions:  make(map[string]*cartSession),
		catalog:   catalog,
		formatter: formatter,
		logger:    logger,
		ttl:       ttl,
		backlog:   backlog,
		now:       time.Now,
	}
}

func (s *CartService) session(sessionID string) *cartSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &cartSession{inbox: NewInbox(s.backlog)}
		record := NotifierFunc(func(n models.Notification) {
			sess.inbox.Notify(n)
			sess.latest = &n
		})
		sess.store = NewCartStore(loggingNotifier(s.logger.With("session", sessionID), record), s.formatter)
		s.sessions[sessionID] = sess
		s.logger.Debug("cart session opened", "session", sessionID)
	}
	sess.lastSeen = s.now()
	return sess
}

// lookup returns the session's cart without opening a new one.
func (s *CartService) lookup(sessionID string) *cartSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	sess.lastSeen = s.now()
	return sess
}

// mutate runs fn against the session's cart and reports the cart afterwards together with
// the notification fn produced, if any.
func (s *CartService) mutate(sessionID string, fn func(store *CartStore)) *models.CartMutationResponse {
	sess := s.session(sessionID)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.latest = nil
	fn(sess.store)

	return &models.CartMutationResponse{
		Cart:         s.view(sess.store),
		Notification: sess.latest,
	}
}

// GetCart reports the session's cart. Unknown sessions read as an empty cart and are not opened.
func (s *CartService) GetCart(sessionID string) models.CartView {
	sess := s.lookup(sessionID)
	if sess == nil {
		return s.emptyView()
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return s.view(sess.store)
}

// AddItem adds one card of the given catalog id at its catalog face value.
func (s *CartService) AddItem(ctx context.Context, sessionID string, cardID int) (*models.CartMutationResponse, error) {
	card, err := s.catalog.FindByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("add card %d: %w", cardID, err)
	}

	resp := s.mutate(sessionID, func(store *CartStore) {
		store.AddItem(card.ID, card.FaceValue)
	})
	s.logger.Info("cart item added", "session", sessionID, "card_id", card.ID, "total_quantity", resp.Cart.TotalQuantity)
	return resp, nil
}

func (s *CartService) RemoveItem(sessionID string, cardID int) *models.CartMutationResponse {
	if s.lookup(sessionID) == nil {
		return &models.CartMutationResponse{Cart: s.emptyView()}
	}
	resp := s.mutate(sessionID, func(store *CartStore) {
		store.RemoveItem(cardID)
	})
	s.logger.Info("cart item removed", "session", sessionID, "card_id", cardID)
	return resp
}

func (s *CartService) ChangeQuantity(sessionID string, cardID, delta int) *models.CartMutationResponse {
	if s.lookup(sessionID) == nil {
		return &models.CartMutationResponse{Cart: s.emptyView()}
	}
	resp := s.mutate(sessionID, func(store *CartStore) {
		store.ChangeQuantity(cardID, delta)
	})
	s.logger.Info("cart quantity changed", "session", sessionID, "card_id", cardID, "delta", delta)
	return resp
}

func (s *CartService) Checkout(sessionID string) *models.CartMutationResponse {
	resp := s.mutate(sessionID, func(store *CartStore) {
		store.Checkout()
	})
	s.logger.Info("checkout requested", "session", sessionID, "total_amount", resp.Cart.TotalAmount)
	return resp
}

// Notifications drains the acknowledgments queued for the session.
func (s *CartService) Notifications(sessionID string) []models.Notification {
	sess := s.lookup(sessionID)
	if sess == nil {
		return []models.Notification{}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.inbox.Drain()
}

func (s *CartService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the configured TTL and returns how many were dropped.
func (s *CartService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	dropped := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			dropped++
		}
	}
	if dropped > 0 {
		s.logger.Info("expired cart sessions discarded", "count", dropped)
	}
	return dropped
}

// Run sweeps expired sessions until ctx is done.
func (s *CartService) Run(ctx context.Context) {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *CartService) emptyView() models.CartView {
	return models.CartView{Items: []models.CartLineView{}, FormattedTotal: s.formatter.Format(0)}
}

func (s *CartService) view(store *CartStore) models.CartView {
	items := store.Items()
	lines := make([]models.CartLineView, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.CartLineView{
			ID:                 item.ID,
			UnitAmount:         item.UnitAmount,
			FormattedUnit:      s.formatter.Format(item.UnitAmount),
			Quantity:           item.Quantity,
			LineTotal:          item.LineTotal(),
			FormattedLineTotal: s.formatter.Format(item.LineTotal()),
		})
	}

	total := store.TotalAmount()
	return models.CartView{
		Items:          lines,
		TotalAmount:    total,
		TotalQuantity:  store.TotalQuantity(),
		FormattedTotal: s.formatter.Format(total),
	}
}
