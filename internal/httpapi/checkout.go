package httpapi

import (
	"errors"
	"net/http"

	"adornia-be/internal/cart"
	"adornia-be/internal/checkout"
	"adornia-be/internal/logger"
	"adornia-be/internal/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) DeliveryOptions(c *gin.Context) {
	respondOK(c, http.StatusOK, gin.H{"options": checkout.DeliveryOptions()})
}

type checkoutRequest struct {
	Items      []cart.LineItem       `json:"items"`
	Customer   checkout.CustomerInfo `json:"customer"`
	DeliveryID string                `json:"deliveryId"`
	RememberMe bool                  `json:"rememberMe"`
}

// StartCheckout validates the address step and parks the draft for the
// payment step. The cart in the request body is authoritative for line
// identity only; prices and totals are recomputed server-side.
func (h *Handlers) StartCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid checkout payload")
		return
	}

	items := req.Items
	if len(items) == 0 {
		items = h.cartStore.Load(c.Request).Items
	}

	draft, err := h.checkout.SaveDraft(c.Request.Context(), sessionID(c), items, req.Customer, req.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(c, http.StatusBadRequest, "cart is empty")
		case errors.Is(err, checkout.ErrInvalidCustomerInfo):
			respondError(c, http.StatusBadRequest, "incomplete customer information")
		case errors.Is(err, checkout.ErrUnknownDeliveryOption):
			respondError(c, http.StatusBadRequest, "unknown delivery option")
		default:
			logger.FromCtx(c.Request.Context()).Error("failed to save checkout draft", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "could not start checkout")
		}
		return
	}

	if req.RememberMe {
		if err := h.contacts.Save(c.Writer, req.Customer); err != nil {
			logger.FromCtx(c.Request.Context()).Warn("failed to save contact info cookie", zap.Error(err))
		}
	}

	respondOK(c, http.StatusOK, gin.H{
		"orderNumber": draft.OrderNumber,
		"totals":      draft.Totals,
		"delivery":    draft.Delivery,
	})
}

func (h *Handlers) SavedContact(c *gin.Context) {
	info, ok := h.contacts.Load(c.Request)
	respondOK(c, http.StatusOK, gin.H{"found": ok, "customer": info})
}

// ValidateStock is the advisory pre-payment check the payment page calls
// before opening the gateway popup.
func (h *Handlers) ValidateStock(c *gin.Context) {
	result, err := h.checkout.ValidateStock(c.Request.Context(), sessionID(c))
	if err != nil {
		if errors.Is(err, checkout.ErrDraftNotFound) {
			respondError(c, http.StatusNotFound, "no checkout in progress")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("stock validation failed", zap.Error(err))
		if len(result.Errors) == 0 {
			result.Errors = []string{"could not validate inventory availability"}
		}
		result.Valid = false
	}

	respondOK(c, http.StatusOK, gin.H{
		"valid":  result.Valid,
		"errors": result.Errors,
	})
}

type verifyPaymentRequest struct {
	Reference   string `json:"reference"`
	OrderNumber string `json:"orderNumber"`
}

// VerifyPayment confirms the charge with the gateway and finalizes the
// order. Failure here means the buyer sees an error page but may have been
// charged, so the response distinguishes verification failure from a
// missing draft.
func (h *Handlers) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Reference == "" {
		respondError(c, http.StatusBadRequest, "payment reference is required")
		return
	}

	completed, err := h.checkout.CompleteCardPayment(c.Request.Context(), sessionID(c), req.Reference)
	if err != nil {
		log := logger.FromCtx(c.Request.Context()).With(
			zap.String("reference", req.Reference),
			zap.String("order_number", req.OrderNumber),
		)
		switch {
		case errors.Is(err, checkout.ErrDraftNotFound):
			respondError(c, http.StatusNotFound, "no checkout in progress")
		case errors.Is(err, payment.ErrNotSuccessful):
			respondError(c, http.StatusPaymentRequired, "payment was not successful")
		case errors.Is(err, payment.ErrAmountMismatch):
			log.Error("payment amount mismatch", zap.Error(err))
			respondError(c, http.StatusConflict, "payment amount does not match order total")
		default:
			log.Error("payment verification failed", zap.Error(err))
			respondError(c, http.StatusBadGateway, "could not verify payment")
		}
		return
	}

	h.cartStore.Clear(c.Writer)

	respondOK(c, http.StatusOK, gin.H{
		"paymentStatus": completed.PaymentStatus,
		"orderNumber":   completed.OrderNumber,
		"transactionId": completed.TransactionID,
		"reference":     completed.PaymentReference,
		"amount":        completed.Amount,
		"paidAt":        completed.PaidAt,
		"channel":       completed.Channel,
	})
}

// BankTransfer records the order without gateway verification. The buyer
// gets the transfer instructions by email.
func (h *Handlers) BankTransfer(c *gin.Context) {
	completed, err := h.checkout.CompleteBankTransfer(c.Request.Context(), sessionID(c))
	if err != nil {
		if errors.Is(err, checkout.ErrDraftNotFound) {
			respondError(c, http.StatusNotFound, "no checkout in progress")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("bank transfer checkout failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not complete checkout")
		return
	}

	h.cartStore.Clear(c.Writer)

	respondOK(c, http.StatusOK, gin.H{
		"paymentStatus": completed.PaymentStatus,
		"orderNumber":   completed.OrderNumber,
		"amount":        completed.Amount,
	})
}

// CompletedOrder serves the confirmation page after either payment path.
func (h *Handlers) CompletedOrder(c *gin.Context) {
	completed, err := h.checkout.GetCompleted(c.Request.Context(), sessionID(c))
	if err != nil {
		if errors.Is(err, checkout.ErrDraftNotFound) {
			respondError(c, http.StatusNotFound, "no completed order for this session")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to load completed order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "could not load order")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"order": completed})
}
