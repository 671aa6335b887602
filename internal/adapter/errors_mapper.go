// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Any other status becomes an
// error wrapping ErrTransport and, where one exists, the matching
// status sentinel. The body is kept only as message text.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	var status error
	switch resp.StatusCode() {
	case http.StatusBadRequest:
		status = ErrBadRequest
	case http.StatusUnauthorized:
		status = ErrUnauthorized
	case http.StatusForbidden:
		status = ErrForbidden
	case http.StatusNotFound:
		status = ErrNotFound
	case http.StatusInternalServerError:
		status = ErrInternalServerError
	case http.StatusBadGateway:
		status = ErrBadGateway
	default:
		return fmt.Errorf("%w: http %d: %s", ErrTransport, resp.StatusCode(), body)
	}

	return fmt.Errorf("%w: %w: %s", ErrTransport, status, body)
}

// transportError wraps a request that never produced a response.
func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
}
