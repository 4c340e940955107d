package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx HTTP status into an error wrapping the
// matching sentinel. 2xx responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if sentinel := sentinelForStatus(resp.StatusCode()); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, body)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
