package calc

import (
	"errors"
	"math"
	"testing"

	"tipsplit/internal/models"
)

const epsilon = 1e-9

func TestCompute(t *testing.T) {
	tests := []struct {
		name          string
		input         models.CalculationInput
		wantTipAmount float64
		wantTotal     float64
		wantPerPerson float64
	}{
		{
			name:          "two-way split without rounding",
			input:         models.CalculationInput{Bill: 50.00, TipPercent: 15, PartySize: 2},
			wantTipAmount: 7.50,
			wantTotal:     57.50,
			wantPerPerson: 28.75,
		},
		{
			name:          "three-way split rounds up at the cent",
			input:         models.CalculationInput{Bill: 50.00, TipPercent: 15, PartySize: 3, RoundUp: true},
			wantTipAmount: 7.50,
			wantTotal:     57.50,
			wantPerPerson: 19.17,
		},
		{
			name:          "zero bill",
			input:         models.CalculationInput{Bill: 0, TipPercent: 20, PartySize: 1},
			wantTipAmount: 0,
			wantTotal:     0,
			wantPerPerson: 0,
		},
		{
			name:          "zero tip",
			input:         models.CalculationInput{Bill: 80, TipPercent: 0, PartySize: 4},
			wantTipAmount: 0,
			wantTotal:     80,
			wantPerPerson: 20,
		},
		{
			name:          "tip above slider range accepted",
			input:         models.CalculationInput{Bill: 100, TipPercent: 75, PartySize: 1},
			wantTipAmount: 75,
			wantTotal:     175,
			wantPerPerson: 175,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.input)
			if math.Abs(result.TipAmount-tt.wantTipAmount) > epsilon {
				t.Errorf("TipAmount = %v, want %v", result.TipAmount, tt.wantTipAmount)
			}
			if math.Abs(result.Total-tt.wantTotal) > epsilon {
				t.Errorf("Total = %v, want %v", result.Total, tt.wantTotal)
			}
			if math.Abs(result.PerPerson-tt.wantPerPerson) > epsilon {
				t.Errorf("PerPerson = %v, want %v", result.PerPerson, tt.wantPerPerson)
			}
		})
	}
}

func TestComputeSplitCoversTotal(t *testing.T) {
	inputs := []models.CalculationInput{
		{Bill: 50.00, TipPercent: 15, PartySize: 3, RoundUp: true},
		{Bill: 99.99, TipPercent: 18.5, PartySize: 7, RoundUp: true},
		{Bill: 0.01, TipPercent: 50, PartySize: 6, RoundUp: true},
		{Bill: 123.45, TipPercent: 12, PartySize: 11, RoundUp: true},
	}

	for _, in := range inputs {
		result := Compute(in)

		// rounding only ever increases the per-person share
		if result.PerPerson*float64(in.PartySize) < result.Total-epsilon {
			t.Errorf("split %v * %d = %v does not cover total %v",
				result.PerPerson, in.PartySize, result.PerPerson*float64(in.PartySize), result.Total)
		}

		// per-person share is an exact multiple of one cent
		cents := result.PerPerson * 100
		if math.Abs(cents-math.Round(cents)) > epsilon {
			t.Errorf("PerPerson %v is not a whole number of cents", result.PerPerson)
		}

		// and the smallest such multiple covering the total
		oneCentLess := (math.Round(cents) - 1) / 100
		if oneCentLess*float64(in.PartySize) >= result.Total+epsilon {
			t.Errorf("PerPerson %v is not the minimal covering amount", result.PerPerson)
		}
	}
}

func TestComputeWithoutRoundingIsExact(t *testing.T) {
	inputs := []models.CalculationInput{
		{Bill: 50.00, TipPercent: 15, PartySize: 3},
		{Bill: 99.99, TipPercent: 18.5, PartySize: 7},
		{Bill: 10, TipPercent: 33.3, PartySize: 9},
	}

	for _, in := range inputs {
		result := Compute(in)
		if math.Abs(result.PerPerson*float64(in.PartySize)-result.Total) > epsilon {
			t.Errorf("PerPerson %v * %d != Total %v without rounding",
				result.PerPerson, in.PartySize, result.Total)
		}
	}
}

func TestParseBill(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr error
	}{
		{"plain amount", "50.00", 50.00, nil},
		{"integer amount", "12", 12, nil},
		{"surrounding spaces", "  7.25  ", 7.25, nil},
		{"zero", "0", 0, nil},
		{"non-numeric", "abc", 0, ErrInvalidBill},
		{"empty", "", 0, ErrInvalidBill},
		{"negative", "-0.01", 0, ErrNegativeBill},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBill(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseBill(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBill(%q) unexpected error: %v", tt.text, err)
			}
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("ParseBill(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParsePartySize(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int
		wantErr bool
	}{
		{"one person", "1", 1, false},
		{"large party", "100", 100, false},
		{"zero people", "0", 0, true},
		{"negative", "-3", 0, true},
		{"fractional", "2.5", 0, true},
		{"non-numeric", "two", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePartySize(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPartySize) {
					t.Fatalf("ParsePartySize(%q) error = %v, want ErrInvalidPartySize", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePartySize(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParsePartySize(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
