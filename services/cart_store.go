package services

import (
	"fmt"

	"giftcard-shop/models"
	"giftcard-shop/utils"
)

const (
	addedTitle          = "Добавлено в корзину"
	addedDescription    = "Карта на %s добавлена"
	checkoutTitle       = "Переход к оплате"
	checkoutDescription = "Функция оплаты будет доступна в следующей версии"
)

// MaxLineQuantity caps the quantity of a single line. Increments past it saturate.
const MaxLineQuantity = 999

// CartStore owns the line items of one cart. At most one line exists per id and every
// line has 1 <= quantity <= MaxLineQuantity. It is not safe for concurrent use.
type CartStore struct {
	items     []models.LineItem
	notifier  Notifier
	formatter *utils.CurrencyFormatter
}

func NewCartStore(notifier Notifier, formatter *utils.CurrencyFormatter) *CartStore {
	if notifier == nil {
		notifier = NotifierFunc(func(models.Notification) {})
	}
	return &CartStore{notifier: notifier, formatter: formatter}
}

// AddItem records one more unit of catalogID. The price recorded on the first add stays
// authoritative; unitAmount is ignored for an id already in the cart.
func (s *CartStore) AddItem(catalogID, unitAmount int) {
	s.upsert(catalogID, 1, unitAmount)

	s.notifier.Notify(models.Notification{
		Title:       addedTitle,
		Description: fmt.Sprintf(addedDescription, s.format(unitAmount)),
	})
}

func (s *CartStore) RemoveItem(catalogID int) {
	if i := s.indexOf(catalogID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

// ChangeQuantity shifts the quantity of catalogID by delta, dropping the line once it reaches zero.
// Unknown ids are ignored.
func (s *CartStore) ChangeQuantity(catalogID, delta int) {
	if s.indexOf(catalogID) < 0 {
		return
	}
	s.upsert(catalogID, delta, 0)
}

func (s *CartStore) TotalAmount() int {
	total := 0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *CartStore) TotalQuantity() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Items returns a copy of the lines in the order they were first added.
func (s *CartStore) Items() []models.LineItem {
	out := make([]models.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) Len() int {
	return len(s.items)
}

// Checkout only acknowledges the request. The cart is left as is.
func (s *CartStore) Checkout() {
	s.notifier.Notify(models.Notification{
		Title:       checkoutTitle,
		Description: checkoutDescription,
	})
}

// upsert is the single place lines are created, resized and removed.
func (s *CartStore) upsert(catalogID, delta, unitAmount int) {
	i := s.indexOf(catalogID)
	if i < 0 {
		if delta <= 0 {
			return
		}
		s.items = append(s.items, models.LineItem{ID: catalogID, UnitAmount: unitAmount, Quantity: min(delta, MaxLineQuantity)})
		return
	}

	current := s.items[i].Quantity
	if delta > 0 && delta > MaxLineQuantity-current {
		s.items[i].Quantity = MaxLineQuantity
		return
	}
	quantity := current + delta
	if quantity <= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return
	}
	s.items[i].Quantity = quantity
}

func (s *CartStore) indexOf(catalogID int) int {
	for i := range s.items {
		if s.items[i].ID == catalogID {
			return i
		}
	}
	return -1
}

func (s *CartStore) format(amount int) string {
	if s.formatter == nil {
		return fmt.Sprintf("%d", amount)
	}
	return s.formatter.Format(amount)
}
