// Package reconcile implements the core reconciliation engine keeping the
// asset registry consistent with the source inventory feed.
//
// The engine rebuilds its entire view every cycle: it fetches full snapshots
// from both systems, normalizes the source records, indexes the registry state
// (TargetIndex), and decides per device which create/update operations are
// required. After all devices are processed, registry assets whose serials
// were not seen in the cycle are retired.
//
// # Ordering
//
// Asset records reference a manufacturer and a device type, so creation order
// is always Manufacturer → DeviceType → Asset. A failed create skips only the
// dependent device; other devices and the retirement pass are unaffected.
//
// # Matching
//
// The serial number is the only join key between the two systems. Manufacturer
// names and device-type models match case-insensitively, and the registry's
// casing is authoritative once a record exists — the engine never renames.
//
// # Idempotence
//
// Running a cycle twice against unchanged data issues no writes on the second
// run: existing assets are only updated when name or status drifted, and
// already-retired assets are not retired again.
package reconcile
