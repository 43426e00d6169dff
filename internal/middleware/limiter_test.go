package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResolveRateTier(t *testing.T) {
	tests := []struct {
		path  string
		limit rate.Limit
		burst int
		tier  string
	}{
		{"/api/verify-payment", limitStrict, burstStrict, "strict"},
		{"/api/checkout", limitStrict, burstStrict, "strict"},
		{"/api/checkout/bank-transfer", limitStrict, burstStrict, "strict"},
		{"/api/subscribe", limitStrict, burstStrict, "strict"},
		{"/api/send-email", limitStrict, burstStrict, "strict"},
		{"/api/send-consultation-email", limitStrict, burstStrict, "strict"},
		{"/api/products", limitFrontend, burstFrontend, "frontend"},
		{"/api/products/ankara-two-piece", limitFrontend, burstFrontend, "frontend"},
		{"/api/products/search", limitFrontend, burstFrontend, "frontend"},
		{"/api/cart", limitGeneral, burstGeneral, "general"},
		{"/api/wishlist/items", limitGeneral, burstGeneral, "general"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			limit, burst, tier := resolveRateTier(req)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, tt.burst, burst)
			assert.Equal(t, tt.tier, tier)
		})
	}
}

func TestClientIdentity(t *testing.T) {
	t.Run("Prefers device header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.Header.Set("X-Device-ID", "device-abc")

		assert.Equal(t, "device:device-abc", clientIdentity(req))
	})

	t.Run("Falls back to IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.RemoteAddr = "203.0.113.7:52811"

		assert.Equal(t, "ip:203.0.113.7", clientIdentity(req))
	})

	t.Run("RemoteAddr without port", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/cart", nil)
		req.RemoteAddr = "203.0.113.7"

		assert.Equal(t, "ip:203.0.113.7", clientIdentity(req))
	})
}

func TestGetVisitor_ReusesLimiter(t *testing.T) {
	first := getVisitor("test-reuse:general", limitGeneral, burstGeneral)
	second := getVisitor("test-reuse:general", limitGeneral, burstGeneral)

	assert.Same(t, first, second)
}

func TestRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(RateLimitMiddleware())
	router.POST("/api/subscribe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("Allows within burst", func(t *testing.T) {
		for i := 0; i < burstStrict; i++ {
			req := httptest.NewRequest("POST", "/api/subscribe", nil)
			req.Header.Set("X-Device-ID", "burst-test")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Rejects beyond burst", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/subscribe", nil)
		req.Header.Set("X-Device-ID", "burst-test")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	})

	t.Run("Buckets are per identity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/subscribe", nil)
		req.Header.Set("X-Device-ID", "another-device")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
