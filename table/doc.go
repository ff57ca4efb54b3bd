// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package table drives the paginated voter table.

# Columns

Each VoterRecord becomes a DisplayRow of twelve strings: identifier, name,
address, city, state, zip, party, precinct, ballot type, vote method, vote
location and ballot status. The five street fields collapse into one
AddressLine:

	AddressLine("12", "N", "Main", "St", "") == "12 N Main St"

# Controller

	c := table.NewController(client, logger)
	view, err := c.Load(ctx, models.DefaultDataRequest())
	view, err = c.SortBy(ctx, 2)

Every page, sort, search or page size change issues one GET /data. A failed
load is logged and leaves the last good page in place.

# Exports

Export writes the loaded rows as copy text, CSV or an XLSX workbook, using
the displayed cell values.
*/
package table
