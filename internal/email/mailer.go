package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"adornia-be/internal/logger"

	"go.uber.org/zap"
)

const mailAPIBaseURL = "https://api.resend.com"

// Mailer delivers a single HTML message. Delivery is fire-and-forget from
// the storefront's perspective: callers decide whether a failure matters.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type httpMailer struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

func NewHTTPMailer(apiKey, from string) Mailer {
	if apiKey == "" {
		logger.L().Warn("mail API key is empty, outgoing email will fail")
	}

	return &httpMailer{
		apiKey:  apiKey,
		from:    from,
		baseURL: mailAPIBaseURL,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *httpMailer) Send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		logger.FromCtx(ctx).Error("mail API request failed",
			zap.String("to", to),
			zap.Error(err),
		)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.FromCtx(ctx).Error("mail API returned non-success status",
			zap.String("to", to),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return fmt.Errorf("mail API error: status %d", resp.StatusCode)
	}

	logger.FromCtx(ctx).Info("email sent",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
