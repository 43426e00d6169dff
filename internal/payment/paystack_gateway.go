package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

const paystackBaseURL = "https://api.paystack.co"

// Gateway is the remote authority for charge authorization. The storefront
// never trusts a client-reported payment outcome without verifying the
// reference against it.
type Gateway interface {
	VerifyTransaction(ctx context.Context, reference string) (*Verification, error)
}

type paystackGateway struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewPaystackGateway(secretKey string) Gateway {
	if secretKey == "" {
		logger.L().Warn("Paystack secret key is empty")
	}

	return &paystackGateway{
		secretKey: secretKey,
		baseURL:   paystackBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type paystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID              int64      `json:"id"`
		Status          string     `json:"status"`
		Reference       string     `json:"reference"`
		Amount          int64      `json:"amount"`
		GatewayResponse string     `json:"gateway_response"`
		PaidAt          *time.Time `json:"paid_at"`
		Channel         string     `json:"channel"`
		Currency        string     `json:"currency"`
		Customer        struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

func (g *paystackGateway) VerifyTransaction(ctx context.Context, reference string) (*Verification, error) {
	log := logger.FromCtx(ctx).With(zap.String("reference", reference))

	url := fmt.Sprintf("%s/transaction/verify/%s", g.baseURL, reference)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed building verification request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.secretKey)
	req.Header.Set("Content-Type", "application/json")

	log.Info("verifying transaction with gateway")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("gateway request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read gateway response", zap.Error(err))
		return nil, fmt.Errorf("read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("gateway returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("gateway error: status %d", resp.StatusCode)
	}

	var res paystackVerifyResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("failed decoding gateway response", zap.Error(err))
		return nil, err
	}

	if !res.Status {
		log.Warn("gateway could not verify transaction", zap.String("message", res.Message))
		return nil, fmt.Errorf("%w: %s", ErrVerificationFailed, res.Message)
	}

	log.Info("transaction verified",
		zap.String("status", res.Data.Status),
		zap.Int64("amount", res.Data.Amount),
		zap.String("channel", res.Data.Channel),
	)

	return &Verification{
		Status:          res.Data.Status,
		Reference:       res.Data.Reference,
		TransactionID:   res.Data.ID,
		Amount:          res.Data.Amount,
		Currency:        res.Data.Currency,
		Channel:         res.Data.Channel,
		PaidAt:          res.Data.PaidAt,
		CustomerEmail:   res.Data.Customer.Email,
		GatewayResponse: res.Data.GatewayResponse,
	}, nil
}
