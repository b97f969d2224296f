package services

import (
	"context"

	"giftcard-shop/models"
	"giftcard-shop/repositories"
	"giftcard-shop/utils"
)

type CatalogService struct {
	catalog   repositories.CatalogRepository
	formatter *utils.CurrencyFormatter
}

func NewCatalogService(catalog repositories.CatalogRepository, formatter *utils.CurrencyFormatter) *CatalogService {
	return &CatalogService{catalog: catalog, formatter: formatter}
}

func (s *CatalogService) ListGiftCards(ctx context.Context) ([]models.GiftCardView, error) {
	cards, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.GiftCardView, 0, len(cards))
	for _, card := range cards {
		views = append(views, models.GiftCardView{
			GiftCard:        card,
			FormattedAmount: s.formatter.Format(card.FaceValue),
		})
	}
	return views, nil
}

func (s *CatalogService) GetGiftCard(ctx context.Context, id int) (*models.GiftCardView, error) {
	card, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.GiftCardView{GiftCard: *card, FormattedAmount: s.formatter.Format(card.FaceValue)}, nil
}
