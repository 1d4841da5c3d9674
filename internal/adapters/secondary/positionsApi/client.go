package positionsApi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"
)

const (
	ComputePosition = "positions/compute"

	// requestTimeout таймаут одного запроса; по его истечении источник
	// считается отказавшим и цепочка идёт дальше
	requestTimeout = 30 * time.Second
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент вычислительного микросервиса позиций
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент для работы с микросервисом позиций
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   requestTimeout,
		},
		Log: log,
	}
}

// buildURL собирает полный URL из BaseURL, ApiVersion и endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders устанавливает стандартные заголовки для запросов к API
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// ComputeBodyPosition рассчитывает позицию одного тела через микросервис
func (c *Client) ComputeBodyPosition(ctx context.Context, req ComputeRequest) (*ComputeResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации запроса: %w", err)
	}

	url := c.buildURL(ComputePosition)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	rawJSON := string(body)

	if resp.StatusCode != http.StatusOK {
		// Ошибка внешнего API - Debug
		c.Log.Debug("positions API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return nil, fmt.Errorf("positions API error [status=%d]: %s", resp.StatusCode, truncateString(rawJSON, 500))
	}

	var computeResp ComputeResponse
	if err := json.Unmarshal(body, &computeResp); err != nil {
		c.Log.Debug("failed to unmarshal positions API response",
			"error", err,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(rawJSON, 200),
		)
		return nil, fmt.Errorf("positions API unmarshal failed [status=%d]: %w", resp.StatusCode, err)
	}

	computeResp.RawJSON = rawJSON

	return &computeResp, nil
}
