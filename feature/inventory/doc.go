// Package inventory exposes the device-inventory sync service: it wraps the
// reconciliation engine, serializes cycle execution, and serves the status API
// (GET /sync/status, POST /sync/run).
//
// The heavy lifting lives in the reconcile subpackage; this package is the
// feature shell the daemon loads.
package inventory
