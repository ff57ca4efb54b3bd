// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Commands

The first positional argument selects the command: serve (default), init,
reset or force-init. Anything else is an error.

# CLI Flags

	-p        Server port
	-d        Database URL
	-t        Database type (sqlite or postgres)
	-upstream Base URL of /data and /stats for the page
	-locale   BCP 47 tag for count formatting
	-csv      Voter CSV for init and reset
	-timeout  Upstream request timeout

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	UPSTREAM_URL  → -upstream
	LOCALE        → -locale
	VOTER_CSV     → -csv
	FETCH_TIMEOUT → -timeout

CLI flags take precedence over environment variables. A .env file is loaded
into the environment first; a missing file is ignored.

# Validation

ParseFlags returns an error when:

  - the command is unknown
  - PORT is not a port number
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
  - LOCALE is not a valid language tag
  - FETCH_TIMEOUT is not a positive duration
*/
package cliparse
