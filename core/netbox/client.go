package netbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"inventory-sync/feature/inventory/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Registry API endpoints, relative to <base>/api/.
const (
	manufacturersEndpoint = "dcim/manufacturers/"
	deviceTypesEndpoint   = "plugins/inventory/inventory-item-types/"
	assetsEndpoint        = "plugins/inventory/assets/"
)

// Client talks to the asset registry API. It implements
// reconcile.RegistryGateway.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// listPage is the registry's paginated list envelope. Next carries the
// absolute URL of the following page, or empty on the last one.
type listPage[T any] struct {
	Count   int    `json:"count"`
	Next    string `json:"next"`
	Results []T    `json:"results"`
}

// NewClient creates a registry client from the given configuration.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/") + "/api").
		SetTimeout(time.Duration(cfg.Timeout) * time.Second).
		SetHeader("Authorization", "Token "+cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: http, logger: logger}
}

// fetchAll collects every record of a paginated endpoint, following the
// next-page links until exhausted.
func fetchAll[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var records []T

	url := endpoint
	for url != "" {
		var page listPage[T]
		resp, err := c.http.R().
			SetContext(ctx).
			SetResult(&page).
			Get(url)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", endpoint, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("fetching %s: unexpected status %s", endpoint, resp.Status())
		}

		records = append(records, page.Results...)
		url = page.Next
	}

	return records, nil
}

// FetchManufacturers returns a full snapshot of registry manufacturers.
func (c *Client) FetchManufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	return fetchAll[models.Manufacturer](ctx, c, manufacturersEndpoint)
}

// FetchDeviceTypes returns a full snapshot of registry inventory item types.
func (c *Client) FetchDeviceTypes(ctx context.Context) ([]models.DeviceType, error) {
	return fetchAll[models.DeviceType](ctx, c, deviceTypesEndpoint)
}

// FetchAssets returns a full snapshot of registry assets.
func (c *Client) FetchAssets(ctx context.Context) ([]models.Asset, error) {
	return fetchAll[models.Asset](ctx, c, assetsEndpoint)
}

// CreateManufacturer creates a manufacturer record.
func (c *Client) CreateManufacturer(ctx context.Context, name, slug string) (*models.Manufacturer, error) {
	var created models.Manufacturer
	if err := c.post(ctx, manufacturersEndpoint, map[string]string{"name": name, "slug": slug}, &created); err != nil {
		return nil, fmt.Errorf("creating manufacturer %q: %w", name, err)
	}
	return &created, nil
}

// CreateDeviceType creates an inventory item type record.
func (c *Client) CreateDeviceType(ctx context.Context, payload models.DeviceTypePayload) (*models.DeviceType, error) {
	var created models.DeviceType
	if err := c.post(ctx, deviceTypesEndpoint, payload, &created); err != nil {
		return nil, fmt.Errorf("creating device type %q: %w", payload.Model, err)
	}
	return &created, nil
}

// CreateAsset creates an asset record.
func (c *Client) CreateAsset(ctx context.Context, payload models.AssetPayload) (*models.Asset, error) {
	var created models.Asset
	if err := c.post(ctx, assetsEndpoint, payload, &created); err != nil {
		return nil, fmt.Errorf("creating asset %q: %w", payload.Serial, err)
	}
	return &created, nil
}

// UpdateAsset patches an existing asset record. Payload fields left empty are
// not sent, so a retirement update touches only the status.
func (c *Client) UpdateAsset(ctx context.Context, id int64, payload models.AssetPayload) (*models.Asset, error) {
	var updated models.Asset
	endpoint := fmt.Sprintf("%s%d/", assetsEndpoint, id)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&updated).
		Patch(endpoint)
	if err != nil {
		return nil, fmt.Errorf("updating asset %d: %w", id, err)
	}
	if resp.IsError() {
		c.logger.Error("Registry rejected update",
			zap.String("endpoint", endpoint),
			zap.String("status", resp.Status()),
			zap.ByteString("body", resp.Body()),
		)
		return nil, fmt.Errorf("updating asset %d: unexpected status %s", id, resp.Status())
	}

	return &updated, nil
}

func (c *Client) post(ctx context.Context, endpoint string, payload, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(result).
		Post(endpoint)
	if err != nil {
		return err
	}
	if resp.IsError() {
		c.logger.Error("Registry rejected create",
			zap.String("endpoint", endpoint),
			zap.String("status", resp.Status()),
			zap.ByteString("body", resp.Body()),
		)
		return fmt.Errorf("unexpected status %s", resp.Status())
	}
	return nil
}
