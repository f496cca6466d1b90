package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/config"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/service"
)

// HandleHome serves the homepage payload: hero slides and featured products
func HandleHome(cfg *config.Config, store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	catalogService := service.NewCatalogService(store, cfg.Catalog.PageSize, logger)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalogService.Home())
	}
}

// HandleListProducts serves one page of the filtered, sorted catalog.
// Query parameters: min_price, max_price, categories (repeatable), sort,
// page, page_size.
func HandleListProducts(cfg *config.Config, store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	catalogService := service.NewCatalogService(store, cfg.Catalog.PageSize, logger)
	return func(c *gin.Context) {
		q := service.ListProductsQuery{
			MinPrice:   c.Query("min_price"),
			MaxPrice:   c.Query("max_price"),
			Categories: c.QueryArray("categories"),
			Sort:       c.Query("sort"),
		}
		if raw := c.Query("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "page must be a number"})
				return
			}
			q.Page = page
		}
		if raw := c.Query("page_size"); raw != "" {
			size, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "page_size must be a number"})
				return
			}
			q.PageSize = size
		}

		resp, err := catalogService.ListProducts(q)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// HandleGetFilters serves the sidebar filter metadata
func HandleGetFilters(cfg *config.Config, store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	catalogService := service.NewCatalogService(store, cfg.Catalog.PageSize, logger)
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalogService.Filters())
	}
}

// HandleGetProduct serves the full product detail view
func HandleGetProduct(cfg *config.Config, store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	catalogService := service.NewCatalogService(store, cfg.Catalog.PageSize, logger)
	return func(c *gin.Context) {
		detail, err := catalogService.GetProduct(c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}
