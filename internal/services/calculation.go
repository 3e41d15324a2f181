package services

import (
	"fmt"
	"time"

	"tipsplit/internal/calc"
	"tipsplit/internal/history"
	"tipsplit/internal/logger"
	"tipsplit/internal/models"
)

// CalculationService orchestrates one user-triggered calculation: validate
// the raw form values, compute the result, persist it to history on a
// best-effort basis, and format the display text.
type CalculationService struct {
	store    *history.Store
	logger   logger.Logger
	currency string
	now      func() time.Time
}

// Outcome is everything the view needs after a successful calculation.
type Outcome struct {
	Result models.CalculationResult
	Record models.HistoryRecord
	// Text is the formatted multi-line result shown in the result panel
	// and copied to the clipboard.
	Text string
	// Persisted reports whether the history write succeeded. A failed
	// write never blocks the calculation; the flag exists so the caller
	// can observe the degradation instead of an exception being swallowed
	// somewhere below.
	Persisted bool
}

func NewCalculationService(store *history.Store, currency string, log logger.Logger) *CalculationService {
	return &CalculationService{
		store:    store,
		logger:   log,
		currency: currency,
		now:      time.Now,
	}
}

// SetCurrencySymbol updates the display-only currency text. An empty value
// falls back to "$", matching the form's default.
func (cs *CalculationService) SetCurrencySymbol(symbol string) {
	if symbol == "" {
		symbol = "$"
	}
	cs.currency = symbol
}

func (cs *CalculationService) CurrencySymbol() string {
	return cs.currency
}

// Calculate validates the raw inputs, computes the derived values, and
// appends a snapshot to history. Validation failures come back as one of
// the calc sentinel errors and leave history untouched.
func (cs *CalculationService) Calculate(billText string, tipPercent float64, peopleText string, roundUp bool) (*Outcome, error) {
	bill, err := calc.ParseBill(billText)
	if err != nil {
		return nil, err
	}

	people, err := calc.ParsePartySize(peopleText)
	if err != nil {
		return nil, err
	}

	result := calc.Compute(models.CalculationInput{
		Bill:       bill,
		TipPercent: tipPercent,
		PartySize:  people,
		RoundUp:    roundUp,
	})

	record := models.NewHistoryRecord(result, cs.now())

	persisted := true
	if err := cs.store.Append(record); err != nil {
		persisted = false
		cs.logger.Warning("CalculationService", "history write failed, result shown anyway", map[string]interface{}{
			"error": err.Error(),
		})
	}

	cs.logger.Info("CalculationService", "calculation completed", map[string]interface{}{
		"bill":        record.Bill,
		"tip_percent": record.TipPercent,
		"people":      record.People,
		"per_person":  record.PerPerson,
		"persisted":   persisted,
	})

	return &Outcome{
		Result:    result,
		Record:    record,
		Text:      cs.formatResult(result),
		Persisted: persisted,
	}, nil
}

// HistoryEntries returns the current history snapshot, most recent first.
func (cs *CalculationService) HistoryEntries() []models.HistoryRecord {
	return cs.store.Load()
}

// RecallEntry returns the record at index i of the last loaded snapshot.
func (cs *CalculationService) RecallEntry(i int) (models.HistoryRecord, bool) {
	return cs.store.Select(i)
}

// HistoryLine formats one history list row.
func (cs *CalculationService) HistoryLine(rec models.HistoryRecord) string {
	t := time.Unix(rec.Time, 0).Format("2006-01-02 15:04:05")
	return fmt.Sprintf("%s - %s%.2f +%.1f%% = %s%.2f/pp",
		t, cs.currency, rec.Bill, rec.TipPercent, cs.currency, rec.PerPerson)
}

func (cs *CalculationService) formatResult(result models.CalculationResult) string {
	c := cs.currency
	return fmt.Sprintf("Bill: %s%.2f\nTip (%.1f%%): %s%.2f\nTotal: %s%.2f\nEach (x%d): %s%.2f",
		c, result.Input.Bill,
		result.Input.TipPercent, c, result.TipAmount,
		c, result.Total,
		result.Input.PartySize, c, result.PerPerson)
}
