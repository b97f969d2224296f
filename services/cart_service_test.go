package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"giftcard-shop/libs"
	"giftcard-shop/repositories"
	"giftcard-shop/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	f, err := utils.NewCurrencyFormatter("en-US", "₽")
	require.NoError(t, err)
	return NewCartService(repositories.NewStaticCatalog(), f, libs.NopLogger(), time.Hour, 3)
}

func TestCartServiceAddUsesCatalogPrice(t *testing.T) {
	svc := newTestCartService(t)

	resp, err := svc.AddItem(context.Background(), "s1", 5)
	require.NoError(t, err)

	require.Len(t, resp.Cart.Items, 1)
	line := resp.Cart.Items[0]
	assert.Equal(t, 5, line.ID)
	assert.Equal(t, 10000, line.UnitAmount)
	assert.Equal(t, "10,000 ₽", line.FormattedUnit)
	assert.Equal(t, 10000, resp.Cart.TotalAmount)
	assert.Equal(t, 1, resp.Cart.TotalQuantity)
	assert.Equal(t, "10,000 ₽", resp.Cart.FormattedTotal)

	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Карта на 10,000 ₽ добавлена", resp.Notification.Description)
}

func TestCartServiceUnknownCard(t *testing.T) {
	svc := newTestCartService(t)

	_, err := svc.AddItem(context.Background(), "s1", 404)

	assert.ErrorIs(t, err, repositories.ErrGiftCardNotFound)
	assert.Empty(t, svc.GetCart("s1").Items)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", 1)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "bob", 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "bob", 2)
	require.NoError(t, err)

	assert.Equal(t, 1000, svc.GetCart("alice").TotalAmount)
	assert.Equal(t, 4000, svc.GetCart("bob").TotalAmount)
	assert.Equal(t, 2, svc.SessionCount())
}

func TestCartServiceMutationsWithoutNotification(t *testing.T) {
	svc := newTestCartService(t)
	_, err := svc.AddItem(context.Background(), "s1", 3)
	require.NoError(t, err)

	resp := svc.ChangeQuantity("s1", 3, 2)
	assert.Nil(t, resp.Notification)
	assert.Equal(t, 3, resp.Cart.TotalQuantity)
	assert.Equal(t, 9000, resp.Cart.Items[0].LineTotal)

	resp = svc.ChangeQuantity("s1", 3, -3)
	assert.Empty(t, resp.Cart.Items)

	resp = svc.RemoveItem("s1", 3)
	assert.Nil(t, resp.Notification)
	assert.Equal(t, 0, resp.Cart.TotalAmount)
}

func TestCartServiceCheckoutAndNotifications(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()
	_, err := svc.AddItem(ctx, "s1", 1)
	require.NoError(t, err)

	resp := svc.Checkout("s1")
	require.NotNil(t, resp.Notification)
	assert.Equal(t, "Переход к оплате", resp.Notification.Title)
	assert.Equal(t, 1000, resp.Cart.TotalAmount)

	got := svc.Notifications("s1")
	require.Len(t, got, 2)
	assert.Equal(t, "Добавлено в корзину", got[0].Title)
	assert.Equal(t, "Переход к оплате", got[1].Title)
	assert.Empty(t, svc.Notifications("s1"))
}

func TestCartServiceNotificationBacklogIsBounded(t *testing.T) {
	svc := newTestCartService(t)
	for i := 0; i < 5; i++ {
		svc.Checkout("s1")
	}

	assert.Len(t, svc.Notifications("s1"), 3)
}

func TestCartServiceSweepDropsIdleSessions(t *testing.T) {
	svc := newTestCartService(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, err := svc.AddItem(context.Background(), "old", 1)
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	_, err = svc.AddItem(context.Background(), "fresh", 2)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	assert.Equal(t, 1, svc.Sweep())
	assert.Equal(t, 1, svc.SessionCount())
	assert.Equal(t, 2000, svc.GetCart("fresh").TotalAmount)
	assert.Empty(t, svc.GetCart("old").Items)
}

func TestCartServiceRunStopsOnCancel(t *testing.T) {
	svc := newTestCartService(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestCartServiceConcurrentAddsOnOneSession(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddItem(ctx, "shared", 2)
		}()
	}
	wg.Wait()

	cart := svc.GetCart("shared")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 50, cart.Items[0].Quantity)
	assert.Equal(t, 100000, cart.TotalAmount)
}

func TestCartServiceReadsDoNotOpenSessions(t *testing.T) {
	svc := newTestCartService(t)

	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("visitor-%d", i)
		cart := svc.GetCart(id)
		assert.Empty(t, cart.Items)
		assert.NotNil(t, cart.Items)
		assert.Equal(t, 0, cart.TotalAmount)
		assert.Equal(t, "0 ₽", cart.FormattedTotal)

		notes := svc.Notifications(id)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)

		assert.Empty(t, svc.RemoveItem(id, 1).Cart.Items)
		assert.Empty(t, svc.ChangeQuantity(id, 1, 5).Cart.Items)
	}

	assert.Equal(t, 0, svc.SessionCount())
}
