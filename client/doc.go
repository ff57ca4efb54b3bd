// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client fetches GET /data and GET /stats over HTTP.

# Usage

	c := client.New("http://127.0.0.1:3318", nil, 10*time.Second)
	resp, err := c.FetchData(ctx, models.DefaultDataRequest())
	bundle, err := c.FetchStats(ctx)

A missing or null data array is returned as an empty page.

# Errors

Every failure is a *FetchError whose Kind says what went wrong:

  - KindTransport: no response (refused, timeout, cancelled)
  - KindStatus: a non-2xx status; Body holds the raw response
  - KindDecode: the body is not the expected JSON object

LogError writes one slog record with the kind, URL, status, body and
underlying error.
*/
package client
