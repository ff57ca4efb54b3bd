// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the voter browser.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Grid and chart data:

	GET /data  - One page of voters (server-side grid protocol)
	GET /stats - Six category count maps

Page:

	GET /                 - Table and charts
	GET /export/{format}  - Current page as copy, csv or xlsx

The page and exports read /data and /stats over HTTP from cfg.UpstreamURL,
which defaults to this server.
*/
package router
