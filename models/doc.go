// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire types of GET /data and GET /stats.

# Grid Requests

DataRequest carries the server-side grid parameters:

	draw, start, length, search[value], order[0][column], order[0][dir]

ParseDataRequest reads them from a query string and Values writes them back.
Normalize clamps length to 1..1000 (-1 means the maximum) and replaces an
invalid sort column or direction with column 0 ascending.

# Responses

  - VoterRecord: one voter row, keyed by the upper-case column names
  - DataResponse: draw, recordsTotal, recordsFiltered, data, error
  - StatsBundle: the six count maps
  - ErrorResponse: error, message

# Count Maps

CountMap is an ordered list of (label, count) pairs that encodes as a JSON
object and decodes keeping key order, so charts show categories in the
order the server sent them.
*/
package models
