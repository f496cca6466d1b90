package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/config"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/repository"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/sched"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/service"
)

// HandleBeginCheckout starts a checkout flow for the session's cart.
// An empty cart is rejected before the flow exists at all.
func HandleBeginCheckout(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		state, err := checkoutService.Begin(sess)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// HandleGetCheckout serves the current checkout phase and totals
func HandleGetCheckout(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		state, err := checkoutService.State(sess)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// HandleSubmitShipping runs the shipping guard; success advances the flow
// to the payment phase
func HandleSubmitShipping(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.ShippingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid shipping payload", "details": err.Error()})
			return
		}
		state, err := checkoutService.SubmitShipping(sess, req)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// HandleSetShippingMethod selects standard or express delivery
func HandleSetShippingMethod(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.ShippingMethodRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid method payload", "details": err.Error()})
			return
		}
		state, err := checkoutService.SetShippingMethod(sess, req.Method)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// HandleReturnToShipping is the explicit backward transition to the
// shipping phase
func HandleReturnToShipping(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		state, err := checkoutService.ReturnToShipping(sess)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// HandleSubmitOrder runs the payment guard and, after the simulated
// processing delay, returns the order confirmation
func HandleSubmitOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		var req service.PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid payment payload", "details": err.Error()})
			return
		}
		order, err := checkoutService.SubmitOrder(c.Request.Context(), sess, req)
		if err != nil {
			if c.Request.Context().Err() != nil {
				// client went away during the simulated delay
				c.Status(http.StatusRequestTimeout)
				return
			}
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// HandleGetOrder serves the confirmation view of a submitted order
func HandleGetOrder(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	checkoutService := service.NewCheckoutService(repos, sched.Real{}, cfg.Checkout.SubmitDelay, logger)
	return func(c *gin.Context) {
		sess, ok := sessionOrAbort(c)
		if !ok {
			return
		}
		order, err := checkoutService.GetOrder(c.Request.Context(), sess, c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
