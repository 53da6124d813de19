package reconcile

import (
	"context"

	"inventory-sync/feature/inventory/models"
)

// SourceGateway is the engine's view of the source inventory feed. The feed is
// authoritative for device existence and raw attributes; how it pages or
// authenticates is the implementation's concern.
type SourceGateway interface {
	FetchDevices(ctx context.Context) ([]models.SourceDevice, error)
}

// RegistryGateway is the engine's view of the target asset registry. Fetches
// return full snapshots; each call succeeds or fails as a unit.
type RegistryGateway interface {
	FetchManufacturers(ctx context.Context) ([]models.Manufacturer, error)
	FetchDeviceTypes(ctx context.Context) ([]models.DeviceType, error)
	FetchAssets(ctx context.Context) ([]models.Asset, error)
	CreateManufacturer(ctx context.Context, name, slug string) (*models.Manufacturer, error)
	CreateDeviceType(ctx context.Context, payload models.DeviceTypePayload) (*models.DeviceType, error)
	CreateAsset(ctx context.Context, payload models.AssetPayload) (*models.Asset, error)
	UpdateAsset(ctx context.Context, id int64, payload models.AssetPayload) (*models.Asset, error)
}
