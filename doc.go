// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voter browser.

The voter browser serves a page for exploring a voter ballot-status file:
a paginated, sortable and searchable table of voter records and six bar
charts of aggregate counts (party, city, precinct, ballot status, vote
method and ballot type).

# Commands

	voter-browser [serve]    run the HTTP server (default)
	voter-browser init       create the schema and import the voter CSV
	voter-browser reset      drop the voter table and import again
	voter-browser force-init same as reset

init refuses to touch a database that already holds voters.

# Starting the Server

	go run . -p 3318 -d file:data/voters.db

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Optional settings (flag / environment):

  - -p / PORT: server port (default: 3318)
  - -d / DATABASE_URL: database URL (default: file:data/voters.db)
  - -t / DATABASE_TYPE: sqlite or postgres (default: sqlite)
  - -upstream / UPSTREAM_URL: where the page reads /data and /stats
  - -locale / LOCALE: number formatting locale (default: en-US)
  - -csv / VOTER_CSV: voter file for init and reset
  - -timeout / FETCH_TIMEOUT: upstream request timeout (default: 10s)

A .env file in the working directory is loaded first.

# Architecture

  - handlers: /data, /stats, the page and its exports
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Wire types for /data and /stats
  - db: Schema, CSV import and voter queries
  - client: HTTP client for /data and /stats
  - table: Record table controller and exports
  - stats: Statistics panel controller
  - charts: Bar chart construction and SVG rendering
  - page: Page initialisation and HTML rendering
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
