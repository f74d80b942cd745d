// Package market implements the read-only client for the AEVO market data API.
package market

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/aevobot/aevo-helper-bot/pkg/metrics"
)

const perpSuffix = "-PERP"

// Config defines connection parameters for the market data client.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs HTTP GET calls against the AEVO REST API. Every lookup
// returns either a typed value or ErrUnavailable; no other error escapes.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient builds a market data client for the configured base URL.
func NewClient(cfg Config, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http: httpClient,
		log:  log,
	}
}

// IndexPrice fetches the spot index price for a single asset. The symbol is
// passed to the API verbatim, exactly as the user typed it.
func (c *Client) IndexPrice(ctx context.Context, asset string) (IndexPrice, error) {
	body, err := c.get(ctx, "/index", map[string]string{"asset": asset})
	if err != nil {
		return IndexPrice{}, ErrUnavailable
	}

	var payload struct {
		Price *decimal.Decimal `json:"price"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Price == nil {
		c.recordBadPayload("/index", err)
		return IndexPrice{}, ErrUnavailable
	}

	return IndexPrice{Asset: asset, Price: *payload.Price}, nil
}

// Index fetches the spot index price for every listed asset.
func (c *Client) Index(ctx context.Context) (map[string]decimal.Decimal, error) {
	body, err := c.get(ctx, "/index", nil)
	if err != nil {
		return nil, ErrUnavailable
	}

	var payload map[string]decimal.Decimal
	if err := json.Unmarshal(body, &payload); err != nil {
		c.recordBadPayload("/index", err)
		return nil, ErrUnavailable
	}

	return payload, nil
}

// Assets fetches the identifiers of every tradeable asset, in API order.
func (c *Client) Assets(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/assets", nil)
	if err != nil {
		return nil, ErrUnavailable
	}

	var assets []string
	if err := json.Unmarshal(body, &assets); err != nil {
		c.recordBadPayload("/assets", err)
		return nil, ErrUnavailable
	}

	return assets, nil
}

// FundingRate fetches the funding rate for the asset's perpetual contract.
func (c *Client) FundingRate(ctx context.Context, asset string) (FundingRate, error) {
	body, err := c.get(ctx, "/funding", map[string]string{"instrument_name": asset + perpSuffix})
	if err != nil {
		return FundingRate{}, ErrUnavailable
	}

	var payload struct {
		FundingRate *decimal.Decimal `json:"funding_rate"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.FundingRate == nil {
		c.recordBadPayload("/funding", err)
		return FundingRate{}, ErrUnavailable
	}

	return FundingRate{Asset: asset, Rate: *payload.FundingRate}, nil
}

// HealthCheck probes the assets endpoint to verify the API is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.Assets(ctx); err != nil {
		return err
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	start := time.Now()

	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		metrics.RecordMarketRequest(path, "network_error", time.Since(start))
		c.log.Warn("market api request failed", slog.String("path", path), slog.Any("error", err))
		return nil, err
	}

	if resp.StatusCode() != 200 {
		metrics.RecordMarketRequest(path, "http_error", time.Since(start))
		c.log.Warn("market api returned non-200",
			slog.String("path", path), slog.Int("status", resp.StatusCode()))
		return nil, ErrUnavailable
	}

	metrics.RecordMarketRequest(path, "ok", time.Since(start))
	return resp.Body(), nil
}

func (c *Client) recordBadPayload(path string, err error) {
	metrics.RecordBadPayload(path)
	c.log.Warn("market api payload not usable", slog.String("path", path), slog.Any("error", err))
}
