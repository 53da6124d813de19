// Package models defines the data records exchanged between the source
// inventory feed, the reconciliation engine, and the asset registry.
//
// Records fall into three groups:
//   - Source records (SourceDevice, DeviceRecord): rebuilt from a fresh
//     snapshot every cycle, never persisted.
//   - Registry records (Manufacturer, DeviceType, Asset) and their payloads:
//     JSON tags match the registry's external API contract.
//   - CycleReport: the per-cycle outcome summary handed back to the caller.
package models
