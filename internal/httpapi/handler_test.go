package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adornia-be/internal/cart"
	"adornia-be/internal/catalog"
	"adornia-be/internal/checkout"
	"adornia-be/internal/email"
	"adornia-be/internal/inventory"
	"adornia-be/internal/session"
	"adornia-be/internal/subscribe"
	"adornia-be/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mocks ---

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ProductBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockCatalog) ProductsByCategory(ctx context.Context, category catalog.Category, subcategory string, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, category, subcategory, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockCatalog) SearchProducts(ctx context.Context, query string, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockCatalog) FeaturedProducts(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockCatalog) NewArrivals(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockCatalog) ProductsByIDs(ctx context.Context, ids []string) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *mockCatalog) ProductForUpdate(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *mockCatalog) PatchInventory(ctx context.Context, id, revision string, inv []catalog.VariantRecord) error {
	args := m.Called(ctx, id, revision, inv)
	return args.Error(0)
}

type mockCheckout struct {
	mock.Mock
}

func (m *mockCheckout) SaveDraft(ctx context.Context, sessionID string, items []cart.LineItem, info checkout.CustomerInfo, deliveryID string) (*checkout.Draft, error) {
	args := m.Called(ctx, sessionID, items, info, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Draft), args.Error(1)
}

func (m *mockCheckout) GetDraft(ctx context.Context, sessionID string) (*checkout.Draft, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Draft), args.Error(1)
}

func (m *mockCheckout) ValidateStock(ctx context.Context, sessionID string) (inventory.Result, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(inventory.Result), args.Error(1)
}

func (m *mockCheckout) CompleteCardPayment(ctx context.Context, sessionID, reference string) (*checkout.CompletedOrder, error) {
	args := m.Called(ctx, sessionID, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CompletedOrder), args.Error(1)
}

func (m *mockCheckout) CompleteBankTransfer(ctx context.Context, sessionID string) (*checkout.CompletedOrder, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CompletedOrder), args.Error(1)
}

func (m *mockCheckout) GetCompleted(ctx context.Context, sessionID string) (*checkout.CompletedOrder, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CompletedOrder), args.Error(1)
}

type mockSubscribe struct {
	mock.Mock
}

func (m *mockSubscribe) Subscribe(ctx context.Context, req subscribe.Request, userAgent, ip string) (subscribe.Subscriber, error) {
	args := m.Called(ctx, req, userAgent, ip)
	return args.Get(0).(subscribe.Subscriber), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

// --- Harness ---

type apiEnv struct {
	cat      *mockCatalog
	checkout *mockCheckout
	sub      *mockSubscribe
	mailer   *mockMailer
	deviceID string
	router   *gin.Engine
}

func newAPIEnv() *apiEnv {
	env := &apiEnv{
		cat:      new(mockCatalog),
		checkout: new(mockCheckout),
		sub:      new(mockSubscribe),
		mailer:   new(mockMailer),
		// Each test environment gets its own rate limit bucket.
		deviceID: uuid.New().String(),
	}

	h := NewHandlers(
		env.cat,
		cart.NewStore(),
		wishlist.NewStore(),
		checkout.NewContactStore(),
		session.NewManager("test-secret"),
		env.checkout,
		email.NewSender(env.mailer, "orders@adornia.shop", "https://adornia.shop"),
		env.sub,
	)
	env.router = NewRouter(h)
	return env
}

func (e *apiEnv) do(method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Device-ID", e.deviceID)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return out
}
