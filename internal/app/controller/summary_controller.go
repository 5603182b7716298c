package controller

import (
	"net/http"
	"time"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	"github.com/Kalpana12-cmd/amazon/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	cartService    service.CartService
	catalogService service.CatalogService
	summaryService service.SummaryService
}

func NewSummaryController(
	cartService service.CartService,
	catalogService service.CatalogService,
	summaryService service.SummaryService,
) *SummaryController {
	return &SummaryController{
		cartService:    cartService,
		catalogService: catalogService,
		summaryService: summaryService,
	}
}

// GetOrderSummary renders the order summary projection for the current
// cart against the current catalog snapshot
// GET /api/v1/order-summary
func (ctrl *SummaryController) GetOrderSummary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	projection := ctrl.summaryService.Render(
		ctrl.cartService.Items(),
		ctrl.catalogService,
		model.DefaultDeliveryOptions(),
		time.Now(),
	)

	log.Debug("Order summary rendered", map[string]interface{}{
		"lines":       len(projection.Lines),
		"grand_total": projection.GrandTotalCents,
	})

	c.JSON(http.StatusOK, projection)
}

// ListDeliveryOptions returns the static delivery tiers
// GET /api/v1/delivery-options
func (ctrl *SummaryController) ListDeliveryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"delivery_options": model.DefaultDeliveryOptions(),
	})
}
