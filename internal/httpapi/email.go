package httpapi

import (
	"net/http"
	"time"

	"adornia-be/internal/email"
	"adornia-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SendConsultationEmail handles bespoke-order consultation requests for
// made-to-order products: the shop gets the request, the customer gets an
// acknowledgement.
func (h *Handlers) SendConsultationEmail(c *gin.Context) {
	var data email.ConsultationData
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "invalid consultation payload")
		return
	}
	if data.ProductName == "" || data.CustomerName == "" || data.CustomerEmail == "" {
		respondError(c, http.StatusBadRequest, "product name, customer name and email are required")
		return
	}
	if data.RequestedAt == "" {
		data.RequestedAt = time.Now().Format(time.RFC1123)
	}

	if err := h.emails.SendConsultationRequest(c.Request.Context(), data); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to send consultation request",
			zap.String("product", data.ProductName),
			zap.Error(err),
		)
		respondError(c, http.StatusBadGateway, "could not send consultation request")
		return
	}

	respondOK(c, http.StatusOK, gin.H{})
}

type sendEmailRequest struct {
	Template string               `json:"template"`
	Data     email.OrderEmailData `json:"data"`
}

// SendEmail is the template-discriminated send endpoint. Any template name
// outside the known set is rejected before a single byte reaches the mail
// provider.
func (h *Handlers) SendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid email payload")
		return
	}

	var err error
	switch req.Template {
	case email.TemplateBusinessOrderNotification:
		err = h.emails.SendBusinessOrderNotification(c.Request.Context(), req.Data)
	case email.TemplateCustomerOrderConfirmation:
		err = h.emails.SendCustomerOrderConfirmation(c.Request.Context(), req.Data)
	default:
		respondError(c, http.StatusBadRequest, "unknown email template")
		return
	}

	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to send email",
			zap.String("template", req.Template),
			zap.String("order_number", req.Data.OrderNumber),
			zap.Error(err),
		)
		respondError(c, http.StatusBadGateway, "could not send email")
		return
	}

	respondOK(c, http.StatusOK, gin.H{})
}
