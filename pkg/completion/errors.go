package completion

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// RateLimitMessage is the fixed user-facing text shown when the endpoint
// responds with HTTP 429.
const RateLimitMessage = "API key limit reached. Please try again later."

// RateLimitError is returned when the API responds with HTTP 429 (Too Many
// Requests). It carries an optional RetryAfter duration parsed from the
// Retry-After header.
type RateLimitError struct {
	RetryAfter time.Duration
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %s", e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("rate limited: %s", e.Body)
}

// HTTPError is returned for any non-2xx response other than 429.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// ParseRetryAfter parses the Retry-After header value as either seconds
// (integer) or an HTTP-date (RFC 7231). Returns zero if unparseable or if
// the date is in the past.
func ParseRetryAfter(val string) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil {
		d := time.Until(t)
		if d > 0 {
			return d
		}
		return 0
	}
	return 0
}

// UserMessage collapses any completion error to the plain-text message the
// interaction surface shows the user: the fixed rate-limit sentence for 429,
// the HTTP error for other status failures, and a generic form for anything
// else (network, decode, timeout). Wording of non-429 messages is not part
// of any contract.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rle *RateLimitError
	if errors.As(err, &rle) {
		return RateLimitMessage
	}

	var he *HTTPError
	if errors.As(err, &he) {
		return fmt.Sprintf("HTTP error occurred: %v", he)
	}

	return fmt.Sprintf("Other error occurred: %v", err)
}
