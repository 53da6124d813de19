// Package netbox implements the registry gateway against a NetBox instance
// with the inventory plugin.
//
// List endpoints are paginated; the client follows the next-page links and
// returns full snapshots. Creates use POST, updates use PATCH so partial
// payloads (such as a retirement) only touch the fields they carry. All
// requests authenticate with a token header.
package netbox
