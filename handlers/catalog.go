package handlers

import (
	"net/http"

	"storefront/config"
	catalogRepo "storefront/database/repository/catalog"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the merchant catalog the storefront renders from.
type CatalogHandler struct {
	Repo catalogRepo.CatalogRepository
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repo: repo}
}

// ListServicesHandler returns all active services for the merchant.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Repo.ListServices(config.AppConfig.MerchantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ListProductsHandler returns all active products for the merchant.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	products, err := h.Repo.ListProducts(config.AppConfig.MerchantID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list products", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}
