// Package osmapi is a read-only client for the OpenStreetMap API v0.6.
//
// It fetches map primitives (nodes, ways, relations) over HTTP/XML: single
// objects by type and id, objects referencing another object, and object
// version history. Transport outcomes are translated into a typed error
// taxonomy (see Kind) so callers can distinguish caller mistakes, API-level
// failures, and connection-level failures.
//
// Decoded objects are the types of github.com/paulmach/osm; this package
// never modifies them.
package osmapi
