package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"giftcard-shop/middleware"
	"giftcard-shop/models"
	"giftcard-shop/repositories"
	"giftcard-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

func cardIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid gift card ID"})
		return 0, false
	}
	return id, true
}

// @Summary Get cart
// @Description Get the line items and totals of the current session's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartView}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := ctrl.cartService.GetCart(middleware.SessionID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: cart})
}

// @Summary Add gift card to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Gift card"
// @Success 200 {object} models.Response{data=models.CartMutationResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	resp, err := ctrl.cartService.AddItem(c.Request.Context(), middleware.SessionID(c), req.CardID)
	if errors.Is(err, repositories.ErrGiftCardNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Gift card not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to add gift card",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Gift card added", Data: resp})
}

// @Summary Change line quantity
// @Description Shift the quantity of a cart line by delta; the line is removed once it reaches zero
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Gift card ID"
// @Param request body models.ChangeQuantityRequest true "Quantity delta"
// @Success 200 {object} models.Response{data=models.CartMutationResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	id, ok := cardIDParam(c)
	if !ok {
		return
	}

	var req models.ChangeQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	resp := ctrl.cartService.ChangeQuantity(middleware.SessionID(c), id, *req.Delta)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart updated", Data: resp})
}

// @Summary Remove gift card from cart
// @Tags Cart
// @Produce json
// @Param id path int true "Gift card ID"
// @Success 200 {object} models.Response{data=models.CartMutationResponse}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, ok := cardIDParam(c)
	if !ok {
		return
	}

	resp := ctrl.cartService.RemoveItem(middleware.SessionID(c), id)
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Gift card removed", Data: resp})
}

// @Summary Checkout
// @Description Acknowledge a checkout request. No order is created and no payment is taken.
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartMutationResponse}
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	resp := ctrl.cartService.Checkout(middleware.SessionID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Checkout acknowledged", Data: resp})
}

// @Summary Drain notifications
// @Description Return and clear the acknowledgments queued for the current session
// @Tags Notifications
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Notification}
// @Router /notifications [get]
func (ctrl *CartController) GetNotifications(c *gin.Context) {
	notifications := ctrl.cartService.Notifications(middleware.SessionID(c))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notifications retrieved", Data: notifications})
}
