package osmapi

import "net/http"

// classifyStatus maps an HTTP status code onto the error taxonomy. ok is
// true only for 200; on any other status the decoder is never invoked.
func classifyStatus(status int) (kind Kind, ok bool) {
	switch status {
	case http.StatusOK:
		return 0, true
	case http.StatusUnauthorized:
		return KindUnauthorized, false
	case http.StatusBadRequest:
		return KindBadRequest, false
	case http.StatusNotFound:
		return KindNotFound, false
	case http.StatusGone:
		return KindGone, false
	case http.StatusInternalServerError:
		return KindServer, false
	default:
		return KindAPI, false
	}
}
