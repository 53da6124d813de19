package models

import "time"

// Asset lifecycle states managed by the sync engine. The registry knows more
// states, but the engine only ever writes these two.
const (
	StatusUsed    = "used"
	StatusRetired = "retired"
)

// HardwareKindInventoryItem is the fixed discriminator the registry expects on
// asset payloads for inventory-item hardware.
const HardwareKindInventoryItem = "inventoryitem"

// SourceDevice is a raw device row as returned by the source inventory feed.
// Field names follow the source API; any of them may be empty.
type SourceDevice struct {
	Serial       string `json:"serialNumber"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Name         string `json:"name"`
}

// DeviceRecord is a normalized source device. It is ephemeral: rebuilt from a
// fresh source snapshot on every cycle. Serial is the natural key joining the
// two systems; a record with an empty serial cannot be synced.
type DeviceRecord struct {
	Serial       string
	Manufacturer string
	Model        string // normalized model label
	RawModel     string // original vendor model string
	Name         string
}

// Manufacturer is a registry-owned manufacturer record.
type Manufacturer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ManufacturerRef references a manufacturer by name inside device-type and
// asset payloads.
type ManufacturerRef struct {
	Name string `json:"name"`
}

// DeviceType is a registry-owned inventory item type record.
type DeviceType struct {
	ID           int64           `json:"id"`
	Model        string          `json:"model"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Manufacturer ManufacturerRef `json:"manufacturer"`
}

// DeviceTypeRef references a device type by model inside asset payloads.
type DeviceTypeRef struct {
	Model string `json:"model"`
}

// DeviceTypePayload is the create payload for a device type. Description holds
// the raw vendor model string for traceability.
type DeviceTypePayload struct {
	Manufacturer ManufacturerRef `json:"manufacturer"`
	Model        string          `json:"model"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
}

// Asset is a registry-owned asset record. Serial may be empty on legacy
// records; such records are excluded from serial-keyed indexing.
type Asset struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Serial      string `json:"serial"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// AssetPayload is the create/update payload for an asset. All fields are
// omitempty so a retirement patch serializes to just {"status":"retired"}.
type AssetPayload struct {
	Name              string           `json:"name,omitempty"`
	Description       string           `json:"description,omitempty"`
	Status            string           `json:"status,omitempty"`
	Serial            string           `json:"serial,omitempty"`
	Manufacturer      *ManufacturerRef `json:"manufacturer,omitempty"`
	HardwareKind      string           `json:"hardware_kind,omitempty"`
	InventoryItemType *DeviceTypeRef   `json:"inventoryitem_type,omitempty"`
}

// CycleReport summarizes one sync cycle. It is always returned to the caller,
// even when individual gateway calls failed mid-cycle.
type CycleReport struct {
	StartedAt            time.Time     `json:"started_at"`
	Duration             time.Duration `json:"duration"`
	DevicesFetched       int           `json:"devices_fetched"`
	ManufacturersCreated int           `json:"manufacturers_created"`
	DeviceTypesCreated   int           `json:"device_types_created"`
	AssetsCreated        int           `json:"assets_created"`
	AssetsUpdated        int           `json:"assets_updated"`
	AssetsRetired        int           `json:"assets_retired"`
	DevicesSkipped       int           `json:"devices_skipped"`
	Errors               []string      `json:"errors"`
}

// HasChanges reports whether the cycle issued any write to the registry.
func (r *CycleReport) HasChanges() bool {
	return r.ManufacturersCreated > 0 ||
		r.DeviceTypesCreated > 0 ||
		r.AssetsCreated > 0 ||
		r.AssetsUpdated > 0 ||
		r.AssetsRetired > 0
}
