package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meinwort/meinwort-go/config"
)

type CatalogHandler struct {
	catalog config.Catalog
}

func NewCatalogHandler(catalog config.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog godoc
// @Summary Get the wizard's category and city catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} config.Catalog
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}
