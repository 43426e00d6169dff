package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testGateway(baseURL string) *paystackGateway {
	return &paystackGateway{
		secretKey:  "sk_test_xyz",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: time.Second},
	}
}

func TestVerifyTransaction_Success(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(r.Context())
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {
				"id": 4099260516,
				"status": "success",
				"reference": "re4lyvq3s3",
				"amount": 5150000,
				"gateway_response": "Successful",
				"paid_at": "2026-08-22T09:15:02.000Z",
				"channel": "card",
				"currency": "NGN",
				"customer": {"email": "ada@example.com"}
			}
		}`))
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	v, err := g.VerifyTransaction(context.Background(), "re4lyvq3s3")

	assert.NoError(t, err)
	assert.True(t, v.Succeeded())
	assert.Equal(t, "re4lyvq3s3", v.Reference)
	assert.Equal(t, int64(4099260516), v.TransactionID)
	assert.Equal(t, int64(5150000), v.Amount)
	assert.Equal(t, "card", v.Channel)
	assert.Equal(t, "NGN", v.Currency)
	assert.Equal(t, "ada@example.com", v.CustomerEmail)
	assert.NotNil(t, v.PaidAt)

	assert.Equal(t, "/transaction/verify/re4lyvq3s3", captured.URL.Path)
	assert.Equal(t, "Bearer sk_test_xyz", captured.Header.Get("Authorization"))
}

func TestVerifyTransaction_FailedCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": true,
			"message": "Verification successful",
			"data": {"status": "failed", "reference": "declined-ref", "amount": 5150000}
		}`))
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	v, err := g.VerifyTransaction(context.Background(), "declined-ref")

	assert.NoError(t, err)
	assert.False(t, v.Succeeded())
	assert.Equal(t, "failed", v.Status)
}

func TestVerifyTransaction_UnknownReference(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	_, err := g.VerifyTransaction(context.Background(), "bogus")

	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Contains(t, err.Error(), "Transaction reference not found")
}

func TestVerifyTransaction_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := testGateway(srv.URL)
	_, err := g.VerifyTransaction(context.Background(), "any")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
