// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a rejected response ends up in an error.
const maxErrorBody = 256

// statusErrors maps the statuses a sync server answers with to sentinels.
var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrPayloadTooLarge,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
	http.StatusServiceUnavailable:    ErrServiceUnavailable,
}

// mapHTTPError returns nil for a 2xx push response. Any other status
// becomes an error wrapping its sentinel, or "http <code>" when unmapped.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	reason := rejectReason(resp.Body())
	if reason == "" {
		reason = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, reason)
	}
	return fmt.Errorf("http %d: %s", code, reason)
}

// rejectReason prefers the "error" or "message" field of a JSON body and
// falls back to the trimmed raw text.
func rejectReason(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	reason := strings.TrimSpace(string(body))
	if len(reason) > maxErrorBody {
		reason = reason[:maxErrorBody] + "..."
	}
	return reason
}
