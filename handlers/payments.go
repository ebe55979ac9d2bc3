package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/isaacwassouf/cricket-betting-service/consts"
	"github.com/isaacwassouf/cricket-betting-service/models"
	"github.com/isaacwassouf/cricket-betting-service/modules"
	"github.com/isaacwassouf/cricket-betting-service/utils"
)

type PaymentHandler struct {
	svc *modules.BettingService
}

func NewPaymentHandler(svc *modules.BettingService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var in models.Payment
	if !bindJSON(c, &in) {
		return
	}

	intent, err := h.svc.Payments.CreatePayment(c.Request.Context(), in)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Payment of %d received successfully.", intent.Payment.Amount),
		"payment":     intent.Payment,
		"reference":   intent.Reference,
		"qr_code_url": utils.QRCodeURL(consts.QR_CODE_PATH, intent.Payment.Amount),
	})
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.svc.Payments.List(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	payment, err := h.svc.Payments.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// QRCode streams the PNG QR code encoding the transfer reference for ?amount=N.
func (h *PaymentHandler) QRCode(c *gin.Context) {
	amount, err := strconv.ParseInt(c.Query("amount"), 10, 64)
	if err != nil {
		abortWithError(c, fmt.Errorf("%w: amount must be an integer", models.ErrValidation))
		return
	}

	png, err := h.svc.Payments.QRCode(amount)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
