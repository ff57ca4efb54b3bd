// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/voter-browser/models"
)

// FetchKind classifies why a fetch failed.
type FetchKind int

const (
	KindTransport FetchKind = iota + 1
	KindStatus
	KindDecode
)

func (k FetchKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError carries the diagnostics of a failed request.
// StatusCode is 0 and Body empty when the request never got a response.
type FetchError struct {
	Kind       FetchKind
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("GET %s: %s error: %v", e.URL, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// maxBody bounds how much of a response is read and kept for logging.
const maxBody = 32 << 20

// Client fetches /data and /stats from a base URL.
type Client struct {
	baseURL string
	hc      *http.Client
}

// New returns a client for baseURL. A nil httpClient uses a client with
// timeout as its only deadline.
func New(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      httpClient,
	}
}

// FetchData loads one page of voters. A missing or null data array is an
// empty page.
func (c *Client) FetchData(ctx context.Context, req models.DataRequest) (models.DataResponse, error) {
	var resp models.DataResponse
	if err := c.getJSON(ctx, "/data?"+req.Values().Encode(), &resp); err != nil {
		return models.DataResponse{}, err
	}
	if resp.Data == nil {
		resp.Data = []models.VoterRecord{}
	}
	return resp, nil
}

// FetchStats loads the aggregate bundle.
func (c *Client) FetchStats(ctx context.Context) (models.StatsBundle, error) {
	var bundle models.StatsBundle
	if err := c.getJSON(ctx, "/stats", &bundle); err != nil {
		return models.StatsBundle{}, err
	}
	return bundle, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Kind:       KindStatus,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &FetchError{
			Kind:       KindDecode,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Err:        errors.New("response is not a JSON object"),
		}
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return &FetchError{Kind: KindDecode, URL: url, StatusCode: resp.StatusCode, Body: string(body), Err: err}
	}
	return nil
}
