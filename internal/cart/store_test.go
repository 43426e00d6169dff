package cart

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore()
	state := Add(Empty(), lineFixture("p1", "M", "Red", 2))

	rec := httptest.NewRecorder()
	assert.NoError(t, store.Save(rec, state))

	got := store.Load(requestWithCookies(rec))
	assert.Equal(t, state.Items, got.Items)
	assert.Equal(t, state.TotalItems, got.TotalItems)
	assert.Equal(t, state.TotalPrice, got.TotalPrice)
}

func TestStore_LoadWithoutCookie(t *testing.T) {
	store := NewStore()
	got := store.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.TotalItems)
}

func TestStore_LoadMalformedCookieFallsBackToEmpty(t *testing.T) {
	store := NewStore()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "adornia_cart", Value: "%7B%22not%22%3A%22a-list%22%7D"})

	got := store.Load(req)
	assert.Empty(t, got.Items)
}

func TestStore_SaveEmptyDeletesCookie(t *testing.T) {
	store := NewStore()
	rec := httptest.NewRecorder()

	assert.NoError(t, store.Save(rec, Empty()))

	cookies := rec.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestStore_SaveOversizedCart(t *testing.T) {
	store := NewStore()

	state := Empty()
	for i := 0; i < 60; i++ {
		item := lineFixture("product-with-a-fairly-long-identifier", "M", "Red", 1)
		item.ProductID = item.ProductID + string(rune('a'+i%26)) + string(rune('a'+i/26))
		item.Slug = "a-long-enough-slug-to-push-the-cookie-over-the-ceiling"
		state = Add(state, item)
	}

	rec := httptest.NewRecorder()
	err := store.Save(rec, state)
	assert.ErrorIs(t, err, ErrCartTooLarge)
}
