package pdq

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventory-sync/feature/inventory/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const devicesEndpoint = "/v1/api/devices"

// Client talks to the source inventory API. It implements
// reconcile.SourceGateway.
type Client struct {
	http     *resty.Client
	pageSize int
	logger   *zap.Logger
}

// devicesPage is the source API list envelope.
type devicesPage struct {
	Data []models.SourceDevice `json:"data"`
}

// NewClient creates a source inventory client from the given configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json")

	return &Client{http: http, pageSize: cfg.PageSize, logger: logger}
}

// FetchDevices returns all devices known to the source, walking pages until a
// short page signals the end. An empty result is a valid outcome.
func (c *Client) FetchDevices(ctx context.Context) ([]models.SourceDevice, error) {
	devices := []models.SourceDevice{}

	for page := 1; ; page++ {
		var body devicesPage
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("page", strconv.Itoa(page)).
			SetQueryParam("pageSize", strconv.Itoa(c.pageSize)).
			SetResult(&body).
			Get(devicesEndpoint)
		if err != nil {
			return nil, fmt.Errorf("fetching devices page %d: %w", page, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetching devices page %d: unexpected status %s", page, resp.Status())
		}

		devices = append(devices, body.Data...)
		if len(body.Data) < c.pageSize {
			break
		}
	}

	c.logger.Info("Fetched devices from source inventory", zap.Int("count", len(devices)))
	return devices, nil
}
