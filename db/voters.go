// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/voter-browser/models"
)

// VoterStore answers the table and statistics queries.
type VoterStore struct {
	db      *sql.DB
	dialect string
}

func NewVoterStore(db *sql.DB, dialect string) *VoterStore {
	return &VoterStore{db: db, dialect: dialect}
}

// searchableColumns are matched by the general (non-name) search.
var searchableColumns = []string{
	"state_voterid",
	"voter_name",
	"street_name",
	"city",
	"zip",
	"voter_reg_party",
	"precinct",
	"vote_location",
}

// numericText holds text columns that carry house numbers. They order by
// length first so "9" sorts before "10" on both dialects.
var numericText = map[string]bool{"street_number": true}

// orderExprs maps display column index to its ORDER BY expressions.
var orderExprs = [models.NumColumns][]string{
	{"state_voterid"},
	{"voter_name"},
	{"street_name", "street_number"},
	{"city"},
	{"state"},
	{"zip"},
	{"voter_reg_party"},
	{"precinct"},
	{"ballot_type"},
	{"ballot_vote_method"},
	{"vote_location"},
	{"ballot_status"},
}

const selectVoters = `
	SELECT COALESCE(state_voterid, ''), COALESCE(voter_name, ''),
	       COALESCE(street_number, ''), COALESCE(street_predirection, ''),
	       COALESCE(street_name, ''), COALESCE(street_type, ''), COALESCE(unit, ''),
	       COALESCE(city, ''), COALESCE(state, ''), COALESCE(zip, ''),
	       COALESCE(voter_reg_party, ''), COALESCE(precinct, ''),
	       COALESCE(ballot_type, ''), COALESCE(ballot_vote_method, ''),
	       COALESCE(vote_location, ''), COALESCE(ballot_status, '')
	FROM voter`

// Count returns the number of stored voters.
func (s *VoterStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM voter`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return n, nil
}

// Page returns one filtered, sorted page of voters.
func (s *VoterStore) Page(ctx context.Context, req models.DataRequest) (models.DataResponse, error) {
	req = req.Normalize()
	resp := models.DataResponse{Draw: req.Draw, Data: []models.VoterRecord{}}

	total, err := s.Count(ctx)
	if err != nil {
		return resp, err
	}
	resp.RecordsTotal = total

	where, args, err := s.searchClause(ctx, req.Search)
	if err != nil {
		return resp, err
	}

	filtered := total
	if where != "" {
		err = s.db.QueryRowContext(ctx,
			Rebind(s.dialect, `SELECT COUNT(*) FROM voter WHERE `+where), args...,
		).Scan(&filtered)
		if err != nil {
			return resp, fmt.Errorf("failed to count filtered voters: %w", err)
		}
	}
	resp.RecordsFiltered = filtered

	query := selectVoters
	if where != "" {
		query += ` WHERE ` + where
	}
	query += ` ORDER BY ` + orderClause(req.OrderColumn, req.OrderDir) + ` LIMIT ? OFFSET ?`
	args = append(args, req.Length, req.Start)

	rows, err := s.db.QueryContext(ctx, Rebind(s.dialect, query), args...)
	if err != nil {
		return resp, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.VoterRecord
		if err := rows.Scan(
			&v.StateVoterID, &v.VoterName,
			&v.StreetNumber, &v.StreetPredirection,
			&v.StreetName, &v.StreetType, &v.Unit,
			&v.City, &v.State, &v.Zip,
			&v.VoterRegParty, &v.Precinct,
			&v.BallotType, &v.BallotVoteMethod,
			&v.VoteLocation, &v.BallotStatus,
		); err != nil {
			return resp, fmt.Errorf("failed to scan voter: %w", err)
		}
		resp.Data = append(resp.Data, v)
	}
	if err := rows.Err(); err != nil {
		return resp, fmt.Errorf("failed to read voters: %w", err)
	}

	return resp, nil
}

// searchClause builds the WHERE clause for a search string.
// Multi-word searches try a name match first and only fall back to the
// per-column search when no name matches.
func (s *VoterStore) searchClause(ctx context.Context, search string) (string, []any, error) {
	terms := strings.Fields(strings.ToLower(search))
	if len(terms) == 0 {
		return "", nil, nil
	}

	if len(terms) > 1 {
		where, args := nameClause(terms)
		var n int
		err := s.db.QueryRowContext(ctx,
			Rebind(s.dialect, `SELECT COUNT(*) FROM voter WHERE `+where), args...,
		).Scan(&n)
		if err != nil {
			return "", nil, fmt.Errorf("failed to run name search: %w", err)
		}
		if n > 0 {
			return where, args, nil
		}
	}

	where, args := columnsClause(terms)
	return where, args, nil
}

func nameClause(terms []string) (string, []any) {
	args := []any{likePattern(strings.Join(terms, " "))}
	all := make([]string, len(terms))
	for i, term := range terms {
		all[i] = likeExpr("voter_name")
		args = append(args, likePattern(term))
	}
	return "(" + likeExpr("voter_name") + " OR (" + strings.Join(all, " AND ") + "))", args
}

func columnsClause(terms []string) (string, []any) {
	var args []any
	perColumn := make([]string, len(searchableColumns))
	for i, col := range searchableColumns {
		conds := make([]string, len(terms))
		for j, term := range terms {
			conds[j] = likeExpr(col)
			args = append(args, likePattern(term))
		}
		perColumn[i] = "(" + strings.Join(conds, " AND ") + ")"
	}
	return "(" + strings.Join(perColumn, " OR ") + ")", args
}

func likeExpr(col string) string {
	return `LOWER(COALESCE(` + col + `, '')) LIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func orderClause(column int, dir string) string {
	sqlDir := "ASC"
	if dir == models.SortDesc {
		sqlDir = "DESC"
	}
	var parts []string
	for _, col := range orderExprs[column] {
		if numericText[col] {
			parts = append(parts, "LENGTH(COALESCE("+col+", '')) "+sqlDir)
		}
		parts = append(parts, "COALESCE("+col+", '') "+sqlDir)
	}
	if column != 0 {
		parts = append(parts, "COALESCE(state_voterid, '') ASC")
	}
	return strings.Join(parts, ", ")
}

// Stats computes the six category counts concurrently.
func (s *VoterStore) Stats(ctx context.Context) (models.StatsBundle, error) {
	var bundle models.StatsBundle

	g, ctx := errgroup.WithContext(ctx)
	targets := []struct {
		column string
		limit  int
		dest   *models.CountMap
	}{
		{"voter_reg_party", 0, &bundle.PartyCounts},
		{"city", models.TopCities, &bundle.CityCounts},
		{"precinct", models.TopPrecincts, &bundle.PrecinctCounts},
		{"ballot_status", 0, &bundle.BallotStatusCounts},
		{"ballot_vote_method", 0, &bundle.VoteMethodCounts},
		{"ballot_type", 0, &bundle.BallotTypeCounts},
	}
	for _, t := range targets {
		g.Go(func() error {
			counts, err := s.valueCounts(ctx, t.column, t.limit)
			if err != nil {
				return err
			}
			*t.dest = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.StatsBundle{}, err
	}

	return bundle, nil
}

// valueCounts counts non-empty values of column, most frequent first.
// limit <= 0 returns every category.
func (s *VoterStore) valueCounts(ctx context.Context, column string, limit int) (models.CountMap, error) {
	query := `
		SELECT ` + column + `, COUNT(*) AS n
		FROM voter
		WHERE ` + column + ` IS NOT NULL AND ` + column + ` <> ''
		GROUP BY ` + column + `
		ORDER BY n DESC, ` + column + ` ASC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, Rebind(s.dialect, query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", column, err)
	}
	defer rows.Close()

	counts := models.CountMap{}
	for rows.Next() {
		var e models.CountEntry
		if err := rows.Scan(&e.Label, &e.Count); err != nil {
			return nil, fmt.Errorf("failed to scan %s count: %w", column, err)
		}
		counts = append(counts, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s counts: %w", column, err)
	}
	return counts, nil
}
