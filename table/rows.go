// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package table

import (
	"strings"

	"github.com/danielhkuo/voter-browser/models"
)

// Columns are the header labels of the twelve display columns, in order.
var Columns = [models.NumColumns]string{
	"Voter ID",
	"Name",
	"Address",
	"City",
	"State",
	"ZIP",
	"Party",
	"Precinct",
	"Ballot Type",
	"Vote Method",
	"Vote Location",
	"Ballot Status",
}

// DisplayRow is a voter as shown in the table: the five address fields are
// collapsed into AddressLine, everything else passes through.
type DisplayRow struct {
	StateVoterID     string
	VoterName        string
	AddressLine      string
	City             string
	State            string
	Zip              string
	VoterRegParty    string
	Precinct         string
	BallotType       string
	BallotVoteMethod string
	VoteLocation     string
	BallotStatus     string
}

func NewDisplayRow(v models.VoterRecord) DisplayRow {
	return DisplayRow{
		StateVoterID:     v.StateVoterID,
		VoterName:        v.VoterName,
		AddressLine:      AddressLine(v.StreetNumber, v.StreetPredirection, v.StreetName, v.StreetType, v.Unit),
		City:             v.City,
		State:            v.State,
		Zip:              v.Zip,
		VoterRegParty:    v.VoterRegParty,
		Precinct:         v.Precinct,
		BallotType:       v.BallotType,
		BallotVoteMethod: v.BallotVoteMethod,
		VoteLocation:     v.VoteLocation,
		BallotStatus:     v.BallotStatus,
	}
}

// Cells returns the rendered values in column order.
func (r DisplayRow) Cells() []string {
	return []string{
		r.StateVoterID,
		r.VoterName,
		r.AddressLine,
		r.City,
		r.State,
		r.Zip,
		r.VoterRegParty,
		r.Precinct,
		r.BallotType,
		r.BallotVoteMethod,
		r.VoteLocation,
		r.BallotStatus,
	}
}

// AddressLine joins the non-empty street components with single spaces in
// the order number, pre-direction, name, type, unit.
func AddressLine(number, predirection, name, streetType, unit string) string {
	parts := make([]string, 0, 5)
	for _, p := range []string{number, predirection, name, streetType, unit} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
