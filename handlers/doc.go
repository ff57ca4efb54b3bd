// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the voter browser.

# Handler Types

  - VoterHandler: GET /data and GET /stats, backed by db.VoterStore
  - PageHandler: GET / and GET /export/{format}, backed by the upstream client

	voterHandler := handlers.NewVoterHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(cfg)

# Data

GetData always answers 200. A failed query is reported in the body so grid
clients do not retry:

	{"draw": 3, "recordsTotal": 0, "recordsFiltered": 0, "data": [], "error": "..."}

GetStats answers 500 with an ErrorResponse when a count fails.

# Page

Index renders the table and the six charts with page.Init and page.Render.
An unreachable upstream still renders the page, with an empty table and no
charts.

Export loads the page named by the query string and writes it as:

	copy - tab separated text
	csv  - voters.csv
	xlsx - voters.xlsx

An unknown format is 404; a failed upstream load is 502.
*/
package handlers
