package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"tipsplit/internal/models"
)

// Validation failures surfaced to the user. Each maps to a distinct message
// so the form can tell the user exactly which field to fix.
var (
	ErrInvalidBill      = errors.New("please enter a valid bill amount")
	ErrNegativeBill     = errors.New("bill amount cannot be negative")
	ErrInvalidPartySize = errors.New("please enter a valid number of people (>=1)")
)

// ParseBill parses the raw bill text from the form.
func ParseBill(text string) (float64, error) {
	bill, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(bill) || math.IsInf(bill, 0) {
		return 0, ErrInvalidBill
	}
	if bill < 0 {
		return 0, ErrNegativeBill
	}
	return bill, nil
}

// ParsePartySize parses the raw party size text from the form.
func ParsePartySize(text string) (int, error) {
	people, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || people < 1 {
		return 0, ErrInvalidPartySize
	}
	return people, nil
}

// Compute derives tip, total, and per-person share from validated inputs.
// Pure function: no I/O, no logging, no shared state.
//
// When RoundUp is set the per-person share is rounded toward positive
// infinity at the cent boundary, so the split always covers the total.
// Tip percent is accepted as-is; the slider bounds it to [0,50] but values
// recalled from history may fall outside that range.
func Compute(in models.CalculationInput) models.CalculationResult {
	tipAmount := in.Bill * in.TipPercent / 100.0
	total := in.Bill + tipAmount
	perPerson := total / float64(in.PartySize)
	if in.RoundUp {
		perPerson = math.Ceil(perPerson*100) / 100.0
	}

	return models.CalculationResult{
		Input:     in,
		TipAmount: tipAmount,
		Total:     total,
		PerPerson: perPerson,
	}
}
