package catalog

import "fmt"

// APIError reports a non-200 status from a catalog or table-data endpoint.
// 401s from an expired token surface here verbatim; the caller must
// re-authenticate, there is no refresh-and-retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// ProtocolError reports a server violating the pagination contract, such as
// a next-page link that cycles or a malformed pagination header.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string {
	return "pagination protocol error: " + e.Reason
}
