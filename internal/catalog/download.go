package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// paginationHeader is the response header carrying the next-page cursor.
const paginationHeader = "X-Pagination"

type paginationInfo struct {
	NextPageLink string `json:"nextPageLink"`
}

// DownloadTable drains every page of a table into one ordered record slice.
// Records are opaque JSON values; page order and in-page order are both
// preserved. Termination is signaled solely by the absence of a next-page
// link, never by an empty record array. A non-200 mid-loop aborts with
// *APIError and no partial result; a cycling or runaway server fails with
// *ProtocolError.
func (c *Client) DownloadTable(ctx context.Context, database, table string) ([]json.RawMessage, error) {
	pageURL := fmt.Sprintf("https://%s.%s/api/%s/%s/%s",
		strings.ToLower(database), c.dataHost, c.apiVersion, database, table)

	records := make([]json.RawMessage, 0)
	visited := make(map[string]struct{})

	for page := 1; ; page++ {
		if page > c.maxPages {
			return nil, &ProtocolError{Reason: fmt.Sprintf("page count exceeded limit of %d", c.maxPages)}
		}
		if _, seen := visited[pageURL]; seen {
			return nil, &ProtocolError{Reason: "next page link revisits " + pageURL}
		}
		visited[pageURL] = struct{}{}

		c.logger.Info().Str("url", pageURL).Int("page", page).Msg("downloading page")

		body, header, err := c.get(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("download table %s/%s: %w", database, table, err)
		}

		var pageRecords []json.RawMessage
		if err := json.Unmarshal(body, &pageRecords); err != nil {
			return nil, fmt.Errorf("download table %s/%s: parse page %d: %w", database, table, page, err)
		}
		records = append(records, pageRecords...)

		next, err := nextPageLink(header)
		if err != nil {
			return nil, fmt.Errorf("download table %s/%s: %w", database, table, err)
		}
		if next == "" {
			c.logger.Debug().Int("pages", page).Int("records", len(records)).Msg("download complete")
			return records, nil
		}
		pageURL = next
	}
}

// nextPageLink extracts the next-page cursor from the pagination header.
// An absent header is the normal last-page signal and returns "".
func nextPageLink(header http.Header) (string, error) {
	raw := header.Get(paginationHeader)
	if raw == "" {
		return "", nil
	}

	var info paginationInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return "", &ProtocolError{Reason: fmt.Sprintf("malformed %s header: %s", paginationHeader, raw)}
	}

	return strings.TrimSpace(info.NextPageLink), nil
}
