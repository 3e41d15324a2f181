package models

import (
	"math"
	"time"
)

// CalculationInput contains the validated values a calculation runs on.
type CalculationInput struct {
	Bill       float64
	TipPercent float64
	PartySize  int
	RoundUp    bool
}

// CalculationResult is derived from a CalculationInput and never mutated
// independently of it.
type CalculationResult struct {
	Input     CalculationInput
	TipAmount float64
	Total     float64
	PerPerson float64
}

// HistoryRecord is an immutable snapshot of one completed calculation.
// The JSON field names are the on-disk history format and must not change.
type HistoryRecord struct {
	Time       int64   `json:"time"`
	Bill       float64 `json:"bill"`
	TipPercent float64 `json:"tip_percent"`
	People     int     `json:"people"`
	PerPerson  float64 `json:"per_person"`
	Total      float64 `json:"total"`
}

// NewHistoryRecord snapshots a result at the given time, with currency
// values rounded to cents before storage.
func NewHistoryRecord(result CalculationResult, now time.Time) HistoryRecord {
	return HistoryRecord{
		Time:       now.Unix(),
		Bill:       RoundToCents(result.Input.Bill),
		TipPercent: RoundToCents(result.Input.TipPercent),
		People:     result.Input.PartySize,
		PerPerson:  RoundToCents(result.PerPerson),
		Total:      RoundToCents(result.Total),
	}
}

// RoundToCents rounds to the nearest 2 decimal places.
func RoundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
