package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"giftcard-shop/libs"
	"giftcard-shop/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var ErrGiftCardNotFound = errors.New("gift card not found")

type CatalogRepository interface {
	List(ctx context.Context) ([]models.GiftCard, error)
	FindByID(ctx context.Context, id int) (*models.GiftCard, error)
}

var defaultGiftCards = []models.GiftCard{
	{ID: 1, FaceValue: 1000},
	{ID: 2, FaceValue: 2000, Popular: true},
	{ID: 3, FaceValue: 3000},
	{ID: 4, FaceValue: 5000},
	{ID: 5, FaceValue: 10000},
	{ID: 6, FaceValue: 15000},
}

// StaticCatalog serves a fixed list of denominations.
type StaticCatalog struct {
	cards []models.GiftCard
}

func NewStaticCatalog(cards ...models.GiftCard) *StaticCatalog {
	if len(cards) == 0 {
		cards = defaultGiftCards
	}
	out := make([]models.GiftCard, len(cards))
	copy(out, cards)
	return &StaticCatalog{cards: out}
}

func (r *StaticCatalog) List(ctx context.Context) ([]models.GiftCard, error) {
	out := make([]models.GiftCard, len(r.cards))
	copy(out, r.cards)
	return out, nil
}

func (r *StaticCatalog) FindByID(ctx context.Context, id int) (*models.GiftCard, error) {
	for _, card := range r.cards {
		if card.ID == id {
			c := card
			return &c, nil
		}
	}
	return nil, ErrGiftCardNotFound
}

// Querier is the part of *pgxpool.Pool the postgres catalog uses.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

type PostgresCatalog struct {
	db Querier
}

func NewPostgresCatalog(db Querier) *PostgresCatalog {
	return &PostgresCatalog{db: db}
}

func (r *PostgresCatalog) List(ctx context.Context) ([]models.GiftCard, error) {
	query := `SELECT id, face_value, popular FROM gift_cards WHERE is_active = true ORDER BY face_value`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query gift cards: %w", err)
	}
	defer rows.Close()

	cards := []models.GiftCard{}
	for rows.Next() {
		var card models.GiftCard
		if err := rows.Scan(&card.ID, &card.FaceValue, &card.Popular); err != nil {
			return nil, fmt.Errorf("scan gift card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

func (r *PostgresCatalog) FindByID(ctx context.Context, id int) (*models.GiftCard, error) {
	query := `SELECT id, face_value, popular FROM gift_cards WHERE id = $1 AND is_active = true`

	var card models.GiftCard
	err := r.db.QueryRow(ctx, query, id).Scan(&card.ID, &card.FaceValue, &card.Popular)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGiftCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query gift card %d: %w", id, err)
	}
	return &card, nil
}

const (
	giftCardListCacheKey = "gift_cards_list"
	giftCardListCacheTTL = 5 * time.Minute
)

// CachedCatalog keeps the catalog listing in redis. A nil client disables caching.
type CachedCatalog struct {
	next   CatalogRepository
	client *redis.Client
	logger *libs.Logger
}

func NewCachedCatalog(next CatalogRepository, client *redis.Client, logger *libs.Logger) *CachedCatalog {
	return &CachedCatalog{next: next, client: client, logger: logger}
}

func (r *CachedCatalog) List(ctx context.Context) ([]models.GiftCard, error) {
	if r.client != nil {
		cached, err := r.client.Get(ctx, giftCardListCacheKey).Result()
		if err == nil {
			var cards []models.GiftCard
			if err := json.Unmarshal([]byte(cached), &cards); err == nil {
				return cards, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			r.logger.Warn("catalog cache read failed", "error", err)
		}
	}

	cards, err := r.next.List(ctx)
	if err != nil {
		return nil, err
	}

	if r.client != nil {
		data, err := json.Marshal(cards)
		if err != nil {
			r.logger.Warn("catalog cache encode failed", "error", err)
			return cards, nil
		}
		if err := r.client.Set(ctx, giftCardListCacheKey, string(data), giftCardListCacheTTL).Err(); err != nil {
			r.logger.Warn("catalog cache write failed", "error", err)
		}
	}
	return cards, nil
}

// FindByID goes straight to the underlying repository so prices added to a cart are never stale.
func (r *CachedCatalog) FindByID(ctx context.Context, id int) (*models.GiftCard, error) {
	return r.next.FindByID(ctx, id)
}

func (r *CachedCatalog) Invalidate(ctx context.Context) {
	if r.client == nil {
		return
	}
	r.client.Del(ctx, giftCardListCacheKey)
}
