package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Stats is the aggregated view over all recorded hits
type Stats struct {
	PieChartData *orderedmap.OrderedMap[string, int] `json:"pieChartData"`
	BarChartData BarChartData                        `json:"barChartData"`
	TableData    []HitRow                            `json:"tableData"`
}

// BarChartData holds per-day hit counts as parallel label/value slices
type BarChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// HitRow is a hit rendered for the stats table
type HitRow struct {
	ID          int64   `json:"id"`
	RequestType string  `json:"request_type"`
	Endpoint    string  `json:"endpoint"`
	UserAgent   string  `json:"user_agent"`
	RequestBody *string `json:"request_body"`
	Timestamp   string  `json:"timestamp"`
}

// NewHitRow renders a hit with a YYYY-MM-DD HH:MM:SS timestamp
func NewHitRow(h Hit) HitRow {
	return HitRow{
		ID:          h.ID,
		RequestType: h.RequestType,
		Endpoint:    h.Endpoint,
		UserAgent:   h.UserAgent,
		RequestBody: h.RequestBody,
		Timestamp:   FormatDateTime(h.Timestamp),
	}
}

// NewStats returns empty stats that marshal to empty collections rather than null
func NewStats() *Stats {
	return &Stats{
		PieChartData: NewUserAgentCounts(),
		BarChartData: BarChartData{Labels: []string{}, Values: []int{}},
		TableData:    []HitRow{},
	}
}

// Increment adds one to the bar for label, appending a new bar if label is unseen.
// Labels keep the order in which they were first seen.
func (b *BarChartData) Increment(label string) {
	for i, l := range b.Labels {
		if l == label {
			b.Values[i]++
			return
		}
	}
	b.Labels = append(b.Labels, label)
	b.Values = append(b.Values, 1)
}

// NewUserAgentCounts creates an empty counter that marshals to a JSON object
// whose keys keep insertion order
func NewUserAgentCounts() *orderedmap.OrderedMap[string, int] {
	return orderedmap.New[string, int]()
}
