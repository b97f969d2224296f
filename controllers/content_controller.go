package controllers

import (
	"net/http"

	"giftcard-shop/models"
	"giftcard-shop/repositories"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	contentRepo *repositories.ContentRepository
}

func NewContentController(contentRepo *repositories.ContentRepository) *ContentController {
	return &ContentController{contentRepo: contentRepo}
}

// @Summary Get storefront features
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Feature}
// @Router /content/features [get]
func (ctrl *ContentController) GetFeatures(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Features retrieved", Data: ctrl.contentRepo.Features()})
}

// @Summary Get purchase steps
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Step}
// @Router /content/steps [get]
func (ctrl *ContentController) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Steps retrieved", Data: ctrl.contentRepo.Steps()})
}

// @Summary Get FAQ
// @Tags Content
// @Produce json
// @Success 200 {object} models.Response{data=[]models.FAQ}
// @Router /content/faqs [get]
func (ctrl *ContentController) GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "FAQ retrieved", Data: ctrl.contentRepo.FAQs()})
}
