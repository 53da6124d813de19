package reconcile

import (
	"sort"
	"strings"

	"inventory-sync/feature/inventory/models"
)

// TargetIndex holds the lookup structures built from one registry snapshot.
// It is owned by a single cycle: records created mid-cycle are inserted so
// later devices reuse them, and nothing survives into the next cycle.
type TargetIndex struct {
	manufacturers map[string]models.Manufacturer // lowercased name
	deviceTypes   map[string]models.DeviceType   // lowercased model
	assets        map[string]models.Asset        // exact serial
}

// BuildIndex constructs the three lookup maps from registry snapshots.
// Assets without a serial cannot be matched to source devices and are
// excluded from the serial index; the engine never touches them.
func BuildIndex(manufacturers []models.Manufacturer, deviceTypes []models.DeviceType, assets []models.Asset) *TargetIndex {
	idx := &TargetIndex{
		manufacturers: make(map[string]models.Manufacturer, len(manufacturers)),
		deviceTypes:   make(map[string]models.DeviceType, len(deviceTypes)),
		assets:        make(map[string]models.Asset, len(assets)),
	}

	for _, m := range manufacturers {
		idx.manufacturers[strings.ToLower(m.Name)] = m
	}
	for _, t := range deviceTypes {
		idx.deviceTypes[strings.ToLower(t.Model)] = t
	}
	for _, a := range assets {
		if a.Serial == "" {
			continue
		}
		idx.assets[a.Serial] = a
	}

	return idx
}

// Manufacturer looks up a manufacturer by name, case-insensitively.
func (i *TargetIndex) Manufacturer(name string) (models.Manufacturer, bool) {
	m, ok := i.manufacturers[strings.ToLower(name)]
	return m, ok
}

// DeviceType looks up a device type by model label, case-insensitively.
func (i *TargetIndex) DeviceType(model string) (models.DeviceType, bool) {
	t, ok := i.deviceTypes[strings.ToLower(model)]
	return t, ok
}

// Asset looks up an asset by exact serial.
func (i *TargetIndex) Asset(serial string) (models.Asset, bool) {
	a, ok := i.assets[serial]
	return a, ok
}

// InsertManufacturer records a freshly created manufacturer in the in-memory
// index only, so subsequent devices in the same cycle resolve it without a
// re-fetch. It never calls the registry.
func (i *TargetIndex) InsertManufacturer(m models.Manufacturer) {
	i.manufacturers[strings.ToLower(m.Name)] = m
}

// InsertDeviceType records a freshly created device type in the in-memory
// index only.
func (i *TargetIndex) InsertDeviceType(t models.DeviceType) {
	i.deviceTypes[strings.ToLower(t.Model)] = t
}

// AssetSerials returns the serials of all indexed assets, sorted for
// deterministic iteration during the retirement pass.
func (i *TargetIndex) AssetSerials() []string {
	serials := make([]string, 0, len(i.assets))
	for serial := range i.assets {
		serials = append(serials, serial)
	}
	sort.Strings(serials)
	return serials
}
