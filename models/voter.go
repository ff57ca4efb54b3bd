// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// VoterRecord is one row of the voter status file as served by GET /data.
// Any field may be missing on the wire; missing fields decode to "".
type VoterRecord struct {
	StateVoterID       string `json:"STATE_VOTERID"`
	VoterName          string `json:"VOTER_NAME"`
	StreetNumber       string `json:"STREET_NUMBER"`
	StreetPredirection string `json:"STREET_PREDIRECTION"`
	StreetName         string `json:"STREET_NAME"`
	StreetType         string `json:"STREET_TYPE"`
	Unit               string `json:"UNIT"`
	City               string `json:"CITY"`
	State              string `json:"STATE"`
	Zip                string `json:"ZIP"`
	VoterRegParty      string `json:"VOTER_REG_PARTY"`
	Precinct           string `json:"PRECINCT"`
	BallotType         string `json:"BALLOT_TYPE"`
	BallotVoteMethod   string `json:"BALLOT_VOTE_METHOD"`
	VoteLocation       string `json:"VOTE_LOCATION"`
	BallotStatus       string `json:"BALLOT_STATUS"`
}

// field decodes any JSON value as display text. Numbers keep their literal
// text and null is "".
type field string

func (f *field) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = field(t)
	case json.Number:
		*f = field(t.String())
	case bool:
		*f = field(strconv.FormatBool(t))
	default:
		*f = field(bytes.TrimSpace(data))
	}
	return nil
}

// UnmarshalJSON accepts strings, numbers, booleans and null for every field,
// so a server that leaves STREET_NUMBER numeric still yields a row.
func (v *VoterRecord) UnmarshalJSON(data []byte) error {
	var w struct {
		StateVoterID       field `json:"STATE_VOTERID"`
		VoterName          field `json:"VOTER_NAME"`
		StreetNumber       field `json:"STREET_NUMBER"`
		StreetPredirection field `json:"STREET_PREDIRECTION"`
		StreetName         field `json:"STREET_NAME"`
		StreetType         field `json:"STREET_TYPE"`
		Unit               field `json:"UNIT"`
		City               field `json:"CITY"`
		State              field `json:"STATE"`
		Zip                field `json:"ZIP"`
		VoterRegParty      field `json:"VOTER_REG_PARTY"`
		Precinct           field `json:"PRECINCT"`
		BallotType         field `json:"BALLOT_TYPE"`
		BallotVoteMethod   field `json:"BALLOT_VOTE_METHOD"`
		VoteLocation       field `json:"VOTE_LOCATION"`
		BallotStatus       field `json:"BALLOT_STATUS"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*v = VoterRecord{
		StateVoterID:       string(w.StateVoterID),
		VoterName:          string(w.VoterName),
		StreetNumber:       string(w.StreetNumber),
		StreetPredirection: string(w.StreetPredirection),
		StreetName:         string(w.StreetName),
		StreetType:         string(w.StreetType),
		Unit:               string(w.Unit),
		City:               string(w.City),
		State:              string(w.State),
		Zip:                string(w.Zip),
		VoterRegParty:      string(w.VoterRegParty),
		Precinct:           string(w.Precinct),
		BallotType:         string(w.BallotType),
		BallotVoteMethod:   string(w.BallotVoteMethod),
		VoteLocation:       string(w.VoteLocation),
		BallotStatus:       string(w.BallotStatus),
	}
	return nil
}

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Paging defaults shared by the data endpoint and the table controller
const (
	DefaultPageLength = 25
	MaxPageLength     = 1000
)

// DataRequest is the server-side grid request for one page of voters.
type DataRequest struct {
	Draw        int
	Start       int
	Length      int
	Search      string
	OrderColumn int
	OrderDir    string
}

// DataResponse is the body of GET /data.
// Data may be null or absent when sent by other servers; clients treat that
// as an empty page.
type DataResponse struct {
	Draw            int           `json:"draw"`
	RecordsTotal    int           `json:"recordsTotal"`
	RecordsFiltered int           `json:"recordsFiltered"`
	Data            []VoterRecord `json:"data"`
	Error           string        `json:"error,omitempty"`
}
