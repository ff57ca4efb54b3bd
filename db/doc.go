// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the voter table: schema, CSV import and the queries behind
GET /data and GET /stats.

# Connecting

	conn, err := db.Open(db.DialectSQLite, "file:data/voters.db")

SQLite uses modernc.org/sqlite and creates the file's directory if needed.
PostgreSQL uses lib/pq. Queries are written with ? placeholders and passed
through Rebind.

# Schema

CreateSchema creates the voter table and its indexes (IF NOT EXISTS).
ResetSchema drops the table first. Every column is TEXT; absent values are
NULL and read back as "".

# Import

	n, err := db.Initialize(ctx, conn, dialect, "data/voter_status.csv", false)

The voter file is Latin-1 with a header row. Columns are matched by header
name; unknown columns are ignored. Initialize without force returns
ErrDatabasePopulated when voters are already present.

# Queries

VoterStore.Page answers one grid request:

	resp, err := store.Page(ctx, req)

A search with several terms first matches the name against the whole phrase
or all terms. When that finds nothing, every term must appear in one of the
searchable columns.

VoterStore.Stats runs the six category counts concurrently. Empty
categories are dropped, counts are ordered descending, and city and
precinct keep their top ten.
*/
package db
