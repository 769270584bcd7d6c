// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request of the sync client.
const UserAgent = "go-task-keeper"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
// Every request carries the [UserAgent] header.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", UserAgent)}
}
