package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"adornia-be/internal/catalog"
	"adornia-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) ListProducts(c *gin.Context) {
	category := catalog.Category(c.Query("category"))
	switch category {
	case catalog.CategoryOutfits, catalog.CategoryShoes, catalog.CategoryAccessories:
	default:
		respondError(c, http.StatusBadRequest, "unknown category")
		return
	}

	limit := parseLimit(c.Query("limit"))
	products, err := h.catalog.ProductsByCategory(c.Request.Context(), category, c.Query("subcategory"), limit)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list products", zap.Error(err))
		respondError(c, http.StatusBadGateway, "could not load products")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondOK(c, http.StatusOK, gin.H{"products": []catalog.Product{}})
		return
	}

	products, err := h.catalog.SearchProducts(c.Request.Context(), query, parseLimit(c.Query("limit")))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("product search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		respondError(c, http.StatusBadGateway, "could not search products")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) FeaturedProducts(c *gin.Context) {
	products, err := h.catalog.FeaturedProducts(c.Request.Context(), parseLimit(c.Query("limit")))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load featured products", zap.Error(err))
		respondError(c, http.StatusBadGateway, "could not load products")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) NewArrivals(c *gin.Context) {
	products, err := h.catalog.NewArrivals(c.Request.Context(), parseLimit(c.Query("limit")))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load new arrivals", zap.Error(err))
		respondError(c, http.StatusBadGateway, "could not load products")
		return
	}
	respondOK(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) GetProduct(c *gin.Context) {
	product, err := h.catalog.ProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to load product",
			zap.String("slug", c.Param("slug")),
			zap.Error(err),
		)
		respondError(c, http.StatusBadGateway, "could not load product")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"product": product})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
