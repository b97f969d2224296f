package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"giftcard-shop/models"
	"giftcard-shop/repositories"
	"giftcard-shop/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService *services.CatalogService
}

func NewCatalogController(catalogService *services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// @Summary Get gift card catalog
// @Description Get all purchasable gift card denominations
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response{data=[]models.GiftCardView}
// @Failure 500 {object} models.ErrorResponse
// @Router /catalog [get]
func (ctrl *CatalogController) GetGiftCards(c *gin.Context) {
	cards, err := ctrl.catalogService.ListGiftCards(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get gift cards",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Gift cards retrieved",
		Data:    cards,
	})
}

// @Summary Get gift card by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Gift card ID"
// @Success 200 {object} models.Response{data=models.GiftCardView}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /catalog/{id} [get]
func (ctrl *CatalogController) GetGiftCardByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid gift card ID"})
		return
	}

	card, err := ctrl.catalogService.GetGiftCard(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrGiftCardNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Gift card not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to get gift card",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Gift card retrieved", Data: card})
}
