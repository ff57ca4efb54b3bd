// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"net/url"
	"strconv"
)

// NumColumns is the number of display columns in the voter table.
const NumColumns = 12

// Query parameter names of the server-side grid protocol
const (
	ParamDraw        = "draw"
	ParamStart       = "start"
	ParamLength      = "length"
	ParamSearch      = "search[value]"
	ParamOrderColumn = "order[0][column]"
	ParamOrderDir    = "order[0][dir]"
)

// DefaultDataRequest is the initial view: first page, 25 rows, column 0 ascending.
func DefaultDataRequest() DataRequest {
	return DataRequest{
		Draw:        1,
		Start:       0,
		Length:      DefaultPageLength,
		OrderColumn: 0,
		OrderDir:    SortAsc,
	}
}

// ParseDataRequest reads grid parameters from a query string.
// Missing or malformed values fall back to the defaults.
func ParseDataRequest(q url.Values) DataRequest {
	req := DefaultDataRequest()
	req.Draw = intParam(q, ParamDraw, req.Draw)
	req.Start = intParam(q, ParamStart, req.Start)
	req.Length = intParam(q, ParamLength, req.Length)
	req.Search = q.Get(ParamSearch)
	req.OrderColumn = intParam(q, ParamOrderColumn, req.OrderColumn)
	if dir := q.Get(ParamOrderDir); dir != "" {
		req.OrderDir = dir
	}
	return req.Normalize()
}

// Normalize clamps paging values and replaces invalid sort settings.
func (r DataRequest) Normalize() DataRequest {
	if r.Draw < 0 {
		r.Draw = 0
	}
	if r.Start < 0 {
		r.Start = 0
	}
	switch {
	case r.Length < 0:
		// -1 asks for every row
		r.Length = MaxPageLength
	case r.Length == 0:
		r.Length = DefaultPageLength
	case r.Length > MaxPageLength:
		r.Length = MaxPageLength
	}
	if r.OrderColumn < 0 || r.OrderColumn >= NumColumns {
		r.OrderColumn = 0
	}
	if r.OrderDir != SortDesc {
		r.OrderDir = SortAsc
	}
	return r
}

// Values encodes the request in the grid protocol's query shape.
func (r DataRequest) Values() url.Values {
	q := url.Values{}
	q.Set(ParamDraw, strconv.Itoa(r.Draw))
	q.Set(ParamStart, strconv.Itoa(r.Start))
	q.Set(ParamLength, strconv.Itoa(r.Length))
	q.Set(ParamSearch, r.Search)
	q.Set(ParamOrderColumn, strconv.Itoa(r.OrderColumn))
	q.Set(ParamOrderDir, r.OrderDir)
	return q
}

func intParam(q url.Values, key string, def int) int {
	s := q.Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
