// Package provider holds the plumbing shared by every network-calling
// adapter: error-message normalisation for failure responses and HTTP client
// construction with mandatory timeouts.
package provider

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ExtractMessage pulls a human-readable error message out of a failure
// response body. The cascade is fixed priority, first match wins:
//
//  1. error.message when it is a string
//  2. top-level error when it is a string (not an object)
//  3. top-level message when it is a string
//
// Malformed JSON is tolerated; the cascade simply finds nothing.
func ExtractMessage(body []byte) (string, bool) {
	if r := gjson.GetBytes(body, "error.message"); r.Type == gjson.String {
		return r.String(), true
	}
	if r := gjson.GetBytes(body, "error"); r.Type == gjson.String {
		return r.String(), true
	}
	if r := gjson.GetBytes(body, "message"); r.Type == gjson.String {
		return r.String(), true
	}
	return "", false
}

// FailureMessage normalises a non-2xx response into a single message: the
// cascade result, else the trimmed raw body, else a synthesised status line.
func FailureMessage(status int, body []byte) string {
	if msg, ok := ExtractMessage(body); ok {
		return msg
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		return raw
	}
	return fmt.Sprintf("request failed with status %d", status)
}
