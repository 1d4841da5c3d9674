package ephemerisApi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// requestTimeout таймаут одного запроса к эфемеридному API
const requestTimeout = 30 * time.Second

// Client - клиент внешнего эфемеридного API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент эфемеридного API
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
		Log: log,
	}
}

// FetchEphemeris запрашивает эфемериду одного тела на момент UTC.
// API принимает GET с query-параметрами, ответ — плоский список строк.
func (c *Client) FetchEphemeris(ctx context.Context, target, utcDate, utcTime string, lon, lat float64) (*EphemerisResponse, error) {
	q := url.Values{}
	q.Set("target", target)
	q.Set("date", utcDate)
	q.Set("time", utcTime)
	q.Set("lon", fmt.Sprintf("%.6f", lon))
	q.Set("lat", fmt.Sprintf("%.6f", lat))
	if c.cfg.ApiKey != "" {
		q.Set("api_key", c.cfg.ApiKey)
	}

	reqURL := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/ephemeris?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

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

	if resp.StatusCode == http.StatusTooManyRequests {
		c.Log.Debug("ephemeris API rate limited", "target", target)
		return nil, fmt.Errorf("ephemeris API rate limited [status=%d]", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("ephemeris API returned non-200 status",
			"status_code", resp.StatusCode,
			"body_preview", preview(rawJSON),
		)
		return nil, fmt.Errorf("ephemeris API error [status=%d]: %s", resp.StatusCode, preview(rawJSON))
	}

	var ephResp EphemerisResponse
	if err := json.Unmarshal(body, &ephResp); err != nil {
		return nil, fmt.Errorf("ephemeris API unmarshal failed: %w", err)
	}

	if ephResp.Error != "" {
		return nil, fmt.Errorf("ephemeris API error: %s", ephResp.Error)
	}

	ephResp.RawJSON = rawJSON

	return &ephResp, nil
}

func preview(s string) string {
	if len(s) <= 200 {
		return s
	}
	return s[:200] + "..."
}
