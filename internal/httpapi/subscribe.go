package httpapi

import (
	"errors"
	"net/http"

	"adornia-be/internal/logger"
	"adornia-be/internal/subscribe"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handlers) Subscribe(c *gin.Context) {
	var req subscribe.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid subscription payload")
		return
	}

	sub, err := h.subscriber.Subscribe(c.Request.Context(), req, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, subscribe.ErrInvalidEmail) {
			respondError(c, http.StatusBadRequest, "a valid email address is required")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("subscription failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, "could not process subscription")
		return
	}

	respondOK(c, http.StatusOK, gin.H{"email": sub.Email})
}
