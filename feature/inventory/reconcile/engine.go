package reconcile

import (
	"context"
	"fmt"
	"time"

	"inventory-sync/feature/inventory/models"

	"go.uber.org/zap"
)

// Engine reconciles source devices against the asset registry. One invocation
// owns its TargetIndex exclusively; cycles never run concurrently.
type Engine struct {
	source     SourceGateway
	registry   RegistryGateway
	normalizer *Normalizer
	logger     *zap.Logger
}

// NewEngine creates a reconciliation engine over the two gateways.
func NewEngine(source SourceGateway, registry RegistryGateway, logger *zap.Logger) *Engine {
	return &Engine{
		source:     source,
		registry:   registry,
		normalizer: NewNormalizer(),
		logger:     logger,
	}
}

// RunCycle executes one full fetch → normalize → reconcile → retire pass.
//
// The initial snapshot fetches double as the connectivity check: any of them
// failing aborts the whole cycle with an error. Every later failure is local
// to one device's dependent chain and is recorded in the report instead of
// being returned. Devices are processed strictly in source order; retirement
// runs strictly after all creates and updates.
func (e *Engine) RunCycle(ctx context.Context) (*models.CycleReport, error) {
	report := &models.CycleReport{
		StartedAt: time.Now(),
		Errors:    []string{},
	}

	manufacturers, err := e.registry.FetchManufacturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching manufacturers: %w", err)
	}
	deviceTypes, err := e.registry.FetchDeviceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching device types: %w", err)
	}
	assets, err := e.registry.FetchAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching assets: %w", err)
	}
	devices, err := e.source.FetchDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching source devices: %w", err)
	}

	e.logger.Info("Fetched registry snapshot",
		zap.Int("manufacturers", len(manufacturers)),
		zap.Int("device_types", len(deviceTypes)),
		zap.Int("assets", len(assets)),
		zap.Int("source_devices", len(devices)),
	)

	index := BuildIndex(manufacturers, deviceTypes, assets)
	report.DevicesFetched = len(devices)

	// Serials seen in this cycle's source snapshot. Membership is independent
	// of whether the device's registry actions succeeded.
	processed := make(map[string]struct{}, len(devices))

	for _, raw := range devices {
		device := e.normalizer.Normalize(raw)

		if device.Serial == "" {
			e.logger.Warn("Device has no serial, skipping", zap.String("name", device.Name))
			report.DevicesSkipped++
			continue
		}
		processed[device.Serial] = struct{}{}

		e.syncDevice(ctx, index, device, report)
	}

	e.retireMissing(ctx, index, processed, report)

	report.Duration = time.Since(report.StartedAt)
	return report, nil
}

// syncDevice resolves the device's manufacturer and device type in dependency
// order, then creates or updates its asset. A failed dependency skips only
// this device.
func (e *Engine) syncDevice(ctx context.Context, index *TargetIndex, device models.DeviceRecord, report *models.CycleReport) {
	manufacturer, ok := e.resolveManufacturer(ctx, index, device, report)
	if !ok {
		report.DevicesSkipped++
		return
	}

	deviceType, ok := e.resolveDeviceType(ctx, index, device, manufacturer, report)
	if !ok {
		report.DevicesSkipped++
		return
	}

	e.syncAsset(ctx, index, device, manufacturer, deviceType, report)
}

func (e *Engine) resolveManufacturer(ctx context.Context, index *TargetIndex, device models.DeviceRecord, report *models.CycleReport) (models.Manufacturer, bool) {
	name := device.Manufacturer
	if name == "" {
		name = UnknownManufacturer
	}

	if existing, ok := index.Manufacturer(name); ok {
		return existing, true
	}

	e.logger.Info("Creating manufacturer", zap.String("name", name))
	created, err := e.registry.CreateManufacturer(ctx, name, Slugify(name))
	if err != nil {
		e.logger.Error("Failed to create manufacturer",
			zap.String("name", name),
			zap.String("serial", device.Serial),
			zap.Error(err),
		)
		report.Errors = append(report.Errors, fmt.Sprintf("create manufacturer %q: %v", name, err))
		return models.Manufacturer{}, false
	}

	index.InsertManufacturer(*created)
	report.ManufacturersCreated++
	return *created, true
}

func (e *Engine) resolveDeviceType(ctx context.Context, index *TargetIndex, device models.DeviceRecord, manufacturer models.Manufacturer, report *models.CycleReport) (models.DeviceType, bool) {
	if existing, ok := index.DeviceType(device.Model); ok {
		return existing, true
	}

	e.logger.Info("Creating device type", zap.String("model", device.Model))
	created, err := e.registry.CreateDeviceType(ctx, models.DeviceTypePayload{
		Manufacturer: models.ManufacturerRef{Name: manufacturer.Name},
		Model:        device.Model,
		Slug:         Slugify(device.Model),
		Description:  device.RawModel,
	})
	if err != nil {
		e.logger.Error("Failed to create device type",
			zap.String("model", device.Model),
			zap.String("serial", device.Serial),
			zap.Error(err),
		)
		report.Errors = append(report.Errors, fmt.Sprintf("create device type %q: %v", device.Model, err))
		return models.DeviceType{}, false
	}

	index.InsertDeviceType(*created)
	report.DeviceTypesCreated++
	return *created, true
}

// syncAsset creates the asset when its serial is unknown to the registry, or
// updates it when the name or status drifted. The registry's casing of the
// manufacturer name and model label is authoritative, so references use the
// resolved records rather than the source's spelling.
func (e *Engine) syncAsset(ctx context.Context, index *TargetIndex, device models.DeviceRecord, manufacturer models.Manufacturer, deviceType models.DeviceType, report *models.CycleReport) {
	payload := models.AssetPayload{
		Name:              device.Name,
		Description:       device.RawModel,
		Status:            models.StatusUsed,
		Serial:            device.Serial,
		Manufacturer:      &models.ManufacturerRef{Name: manufacturer.Name},
		HardwareKind:      models.HardwareKindInventoryItem,
		InventoryItemType: &models.DeviceTypeRef{Model: deviceType.Model},
	}

	existing, ok := index.Asset(device.Serial)
	if !ok {
		e.logger.Info("Creating asset",
			zap.String("serial", device.Serial),
			zap.String("name", device.Name),
		)
		if _, err := e.registry.CreateAsset(ctx, payload); err != nil {
			e.logger.Error("Failed to create asset",
				zap.String("serial", device.Serial),
				zap.Error(err),
			)
			report.Errors = append(report.Errors, fmt.Sprintf("create asset %q: %v", device.Serial, err))
			return
		}
		report.AssetsCreated++
		return
	}

	if existing.Name == device.Name && existing.Status == models.StatusUsed {
		return
	}

	e.logger.Info("Updating asset", zap.String("serial", device.Serial))
	if _, err := e.registry.UpdateAsset(ctx, existing.ID, payload); err != nil {
		e.logger.Error("Failed to update asset",
			zap.String("serial", device.Serial),
			zap.Error(err),
		)
		report.Errors = append(report.Errors, fmt.Sprintf("update asset %q: %v", device.Serial, err))
		return
	}
	report.AssetsUpdated++
}

// retireMissing marks every indexed asset whose serial was absent from this
// cycle's source snapshot as retired. Assets already retired are left alone.
func (e *Engine) retireMissing(ctx context.Context, index *TargetIndex, processed map[string]struct{}, report *models.CycleReport) {
	for _, serial := range index.AssetSerials() {
		if _, ok := processed[serial]; ok {
			continue
		}

		asset, _ := index.Asset(serial)
		if asset.Status == models.StatusRetired {
			continue
		}

		e.logger.Info("Retiring asset", zap.String("serial", serial))
		if _, err := e.registry.UpdateAsset(ctx, asset.ID, models.AssetPayload{Status: models.StatusRetired}); err != nil {
			e.logger.Error("Failed to retire asset",
				zap.String("serial", serial),
				zap.Error(err),
			)
			report.Errors = append(report.Errors, fmt.Sprintf("retire asset %q: %v", serial, err))
			continue
		}
		report.AssetsRetired++
	}
}
