// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLen = 200

// mapHTTPError accepts only 200. Every other status becomes
// [ErrUnexpectedStatus]; 401 additionally matches [ErrUnauthorized].
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "…"
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrUnexpectedStatus, ErrUnauthorized, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, resp.StatusCode(), body)
	}
}
