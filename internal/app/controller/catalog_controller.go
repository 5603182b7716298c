package controller

import (
	"net/http"

	"github.com/Kalpana12-cmd/amazon/internal/app/model"
	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	apperrors "github.com/Kalpana12-cmd/amazon/internal/errors"
	"github.com/Kalpana12-cmd/amazon/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// productView extends a product with the derived display fields the
// grid needs.
type productView struct {
	model.Product
	StarsImageRef string            `json:"stars_image"`
	ExtraInfo     map[string]string `json:"extra_info,omitempty"`
}

// ListProducts returns the current catalog snapshot
// GET /api/v1/products
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products := ctrl.catalogService.Products()
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			Product:       p,
			StarsImageRef: p.StarsImageRef(),
			ExtraInfo:     p.ExtraInfo(),
		})
	}

	log.Debug("Catalog snapshot served", map[string]interface{}{
		"count": len(views),
	})

	c.JSON(http.StatusOK, gin.H{
		"products": views,
		"count":    len(views),
	})
}

// GetProduct returns a single product by id
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")
	product, ok := ctrl.catalogService.Get(id)
	if !ok {
		log.Warn("Product not found in catalog", map[string]interface{}{
			"product_id": id,
		})
		apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, productView{
		Product:       product,
		StarsImageRef: product.StarsImageRef(),
		ExtraInfo:     product.ExtraInfo(),
	})
}

// RefreshCatalog re-fetches the catalog from the remote endpoint
// POST /api/v1/products/refresh
func (ctrl *CatalogController) RefreshCatalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if err := ctrl.catalogService.Load(c.Request.Context()); err != nil {
		log.Error("Catalog refresh failed", err, nil)
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.CatalogRefreshFailed, "Catalog refresh failed")
		return
	}

	log.Info("Catalog refreshed", map[string]interface{}{
		"count": ctrl.catalogService.Len(),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Catalog refreshed",
		"count":   ctrl.catalogService.Len(),
	})
}
