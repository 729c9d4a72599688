package tracing

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for API client spans
const (
	// API call attributes
	AttrAPIOperation = "osm.api.operation"
	AttrAPIPath      = "osm.api.path"
	AttrObjectType   = "osm.object.type"
	AttrObjectID     = "osm.object.id"

	// Rate limiting attributes
	AttrRateLimitWaitMs = "osm.ratelimit.wait_ms"

	// HTTP transport attributes
	AttrHTTPMethod     = "http.method"
	AttrHTTPStatusCode = "http.status_code"

	// Error attributes
	AttrErrorType    = "error.type"
	AttrErrorMessage = "error.message"
)

// ObjectAttributes returns attributes for a lookup of one object
func ObjectAttributes(typ string, id int64) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(AttrObjectType, typ),
		attribute.Int64(AttrObjectID, id),
	}
}

// ErrorAttributes returns attributes for errors
func ErrorAttributes(err error) []attribute.KeyValue {
	if err == nil {
		return nil
	}
	return []attribute.KeyValue{
		attribute.String(AttrErrorType, "error"),
		attribute.String(AttrErrorMessage, err.Error()),
	}
}
