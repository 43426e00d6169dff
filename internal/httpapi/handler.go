package httpapi

import (
	"net/http"

	"adornia-be/internal/cart"
	"adornia-be/internal/catalog"
	"adornia-be/internal/checkout"
	"adornia-be/internal/email"
	"adornia-be/internal/logger"
	"adornia-be/internal/session"
	"adornia-be/internal/subscribe"
	"adornia-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionIDKey = "sessionID"

type Handlers struct {
	catalog    catalog.Client
	cartStore  *cart.Store
	wishStore  *wishlist.Store
	contacts   *checkout.ContactStore
	sessions   *session.Manager
	checkout   checkout.Service
	emails     *email.Sender
	subscriber subscribe.Service
}

func NewHandlers(
	catalogClient catalog.Client,
	cartStore *cart.Store,
	wishStore *wishlist.Store,
	contacts *checkout.ContactStore,
	sessions *session.Manager,
	checkoutSvc checkout.Service,
	emails *email.Sender,
	subscriber subscribe.Service,
) *Handlers {
	return &Handlers{
		catalog:    catalogClient,
		cartStore:  cartStore,
		wishStore:  wishStore,
		contacts:   contacts,
		sessions:   sessions,
		checkout:   checkoutSvc,
		emails:     emails,
		subscriber: subscriber,
	}
}

// SessionMiddleware guarantees every request downstream carries a signed
// guest session. An unverifiable cookie is replaced, not rejected.
func (h *Handlers) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := h.sessions.Ensure(c.Writer, c.Request)
		if err != nil {
			logger.FromCtx(c.Request.Context()).Error("failed to establish session", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "could not establish session")
			c.Abort()
			return
		}
		c.Set(sessionIDKey, sid)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
