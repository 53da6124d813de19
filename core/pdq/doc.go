// Package pdq implements the source gateway against a PDQ Connect style
// device inventory API.
//
// The client walks the device list with page/pageSize parameters until a page
// comes back short, and authenticates with a bearer token. Raw device rows are
// returned as-is; normalization happens in the reconciliation engine.
package pdq
