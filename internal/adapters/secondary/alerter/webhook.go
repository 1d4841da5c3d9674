package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

// requestTimeout таймаут на отправку алерта
const requestTimeout = 10 * time.Second

// Client клиент для отправки алертов через webhook
type Client struct {
	webhookURL string
	channel    string
	username   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient создаёт новый клиент для отправки алертов
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil || cfg.WebhookURL == "" {
		return nil
	}

	return &Client{
		webhookURL: cfg.WebhookURL,
		channel:    cfg.Channel,
		username:   cfg.Username,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// webhookPayload тело POST запроса к webhook
type webhookPayload struct {
	Text     string `json:"text"`
	Channel  string `json:"channel,omitempty"`
	Username string `json:"username,omitempty"`
}

// SendAlert отправляет алерт в канал через webhook
func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil || c.httpClient == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	payload := webhookPayload{
		Text:     message,
		Channel:  c.channel,
		Username: c.username,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal alert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create alert request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("failed to send alert",
			"error", err,
			"channel", c.channel,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		c.log.Warn("alert webhook returned non-2xx status",
			"status_code", resp.StatusCode,
			"channel", c.channel,
		)
		return fmt.Errorf("alert webhook error [status=%d]: %s", resp.StatusCode, string(body))
	}

	c.log.Debug("alert sent successfully",
		"channel", c.channel,
	)

	return nil
}
