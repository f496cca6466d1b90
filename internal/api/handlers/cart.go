package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/api/middleware"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/service"
)

func sessionOrAbort(c *gin.Context) (*repository.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
		return nil, false
	}
	return sess, true
}

// HandleUpdateSelection records size/color/quantity choices for a product
// without touching the cart
func HandleUpdateSelection(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.SelectionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid selection payload", "details": err.Error()})
			return
		}
		if err := cartService.UpdateSelection(sess, c.Param("id"), req); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// HandleAddToCart validates the session's selection and merges the draft
// into the cart
func HandleAddToCart(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		resp, err := cartService.AddToCart(sess, c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// HandleGetCart serves the cart view
func HandleGetCart(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartService.GetCart(sess))
	}
}

// HandleUpdateQuantity sets a line item's quantity (clamped to 1 minimum)
func HandleUpdateQuantity(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid quantity payload", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartService.UpdateQuantity(sess, req))
	}
}

// HandleRemoveItem deletes a line item; removing an absent key is a no-op
func HandleRemoveItem(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.RemoveItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid remove payload", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartService.RemoveItem(sess, req))
	}
}

// HandleSetInstructions stores the special-instructions note on the cart
func HandleSetInstructions(store *catalog.Store, logger *zap.Logger) gin.HandlerFunc {
	cartService := service.NewCartService(store, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.InstructionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid instructions payload", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, cartService.SetInstructions(sess, req.Instructions))
	}
}
