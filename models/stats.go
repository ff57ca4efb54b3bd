// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// CountEntry is one category of an aggregate count.
type CountEntry struct {
	Label string
	Count int64
}

// CountMap maps category labels to counts and keeps the order the entries
// arrived in. It encodes as a JSON object, not an array.
type CountMap []CountEntry

// MarshalJSON writes the entries as a JSON object in slice order.
func (m CountMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(e.Count, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order.
// null decodes to an empty map.
func (m *CountMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("count map: expected object, got %v", tok)
	}

	entries := CountMap{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("count map: unexpected key %v", keyTok)
		}

		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("count map: value for %q: %w", label, err)
		}
		count, err := n.Int64()
		if err != nil {
			return fmt.Errorf("count map: value for %q is not an integer: %w", label, err)
		}
		if count < 0 {
			return fmt.Errorf("count map: negative count %d for %q", count, label)
		}
		entries = append(entries, CountEntry{Label: label, Count: count})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = entries
	return nil
}

// Labels returns the category labels in order.
func (m CountMap) Labels() []string {
	labels := make([]string, len(m))
	for i, e := range m {
		labels[i] = e.Label
	}
	return labels
}

// Get returns the count for label and whether it was present.
func (m CountMap) Get(label string) (int64, bool) {
	for _, e := range m {
		if e.Label == label {
			return e.Count, true
		}
	}
	return 0, false
}

// Top N limits applied by the stats endpoint
const (
	TopCities    = 10
	TopPrecincts = 10
)

// StatsBundle is the body of GET /stats.
type StatsBundle struct {
	PartyCounts        CountMap `json:"party_counts"`
	CityCounts         CountMap `json:"city_counts"`
	PrecinctCounts     CountMap `json:"precinct_counts"`
	BallotStatusCounts CountMap `json:"ballot_status_counts"`
	VoteMethodCounts   CountMap `json:"vote_method_counts"`
	BallotTypeCounts   CountMap `json:"ballot_type_counts"`
}
