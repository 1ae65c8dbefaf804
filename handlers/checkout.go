package handlers

import (
	"errors"
	"net/http"

	"storefront/middleware"
	"storefront/models"
	"storefront/services/checkout"
	"storefront/services/order"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler exposes the checkout wizard over HTTP.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// OpenSessionHandler opens (or re-enters) the checkout flow.
func (h *CheckoutHandler) OpenSessionHandler(c *gin.Context) {
	shopperID := middleware.GetShopperID(c)
	principal := middleware.GetPrincipal(c)

	sess, err := h.Service.Open(c.Request.Context(), shopperID, principal)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GetSessionHandler returns the live session.
func (h *CheckoutHandler) GetSessionHandler(c *gin.Context) {
	sess, err := h.Service.Get(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SelectScheduleHandler records the chosen booking date and start time.
func (h *CheckoutHandler) SelectScheduleHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Service.SelectSchedule(c.Request.Context(), middleware.GetShopperID(c), input.Date, input.Time)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// UpdateCustomerHandler overwrites the contact form fields.
func (h *CheckoutHandler) UpdateCustomerHandler(c *gin.Context) {
	var form models.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	sess, err := h.Service.UpdateCustomer(c.Request.Context(), middleware.GetShopperID(c), form)
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// NextHandler advances the wizard one step.
func (h *CheckoutHandler) NextHandler(c *gin.Context) {
	sess, err := h.Service.Next(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// BackHandler moves the wizard one step backward.
func (h *CheckoutHandler) BackHandler(c *gin.Context) {
	sess, err := h.Service.Back(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// ResetHandler restores the entry step and clears step data.
func (h *CheckoutHandler) ResetHandler(c *gin.Context) {
	sess, err := h.Service.Reset(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		h.writeFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// SubmitHandler finalizes the order from the confirmation step. Guest
// orders additionally get a short-lived cookie carrying the pending order
// id so a later sign-up can link the order to the new account.
func (h *CheckoutHandler) SubmitHandler(c *gin.Context) {
	result, err := h.Service.Submit(c.Request.Context(), middleware.GetShopperID(c))
	if err != nil {
		h.writeFlowError(c, err)
		return
	}

	if result.GuestOrderID != "" {
		c.SetCookie(
			utils.PendingLinkCookieName,
			result.GuestOrderID,
			int(utils.PendingLinkCookieTTL.Seconds()),
			"/",
			"",
			false,
			true,
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"orderID": result.OrderID,
		"session": result.Session,
	})
}

// CloseSessionHandler discards the session. The cart survives.
func (h *CheckoutHandler) CloseSessionHandler(c *gin.Context) {
	if err := h.Service.Close(c.Request.Context(), middleware.GetShopperID(c)); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to close session", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": true})
}

func (h *CheckoutHandler) writeFlowError(c *gin.Context, err error) {
	var flowErr *checkout.FlowError
	if errors.As(err, &flowErr) {
		status := http.StatusConflict
		if flowErr.Code == "sessionNotFound" {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, flowErr.Code, flowErr.Message)
		return
	}

	var subErr *order.SubmissionError
	if errors.As(err, &subErr) {
		utils.JSONError(c, http.StatusBadGateway, "order submission failed", subErr.Message)
		return
	}

	utils.JSONError(c, http.StatusInternalServerError, "checkout operation failed", err.Error())
}
