/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the decimal-based domain model from the external API contract: all
  monetary fields cross the wire as JSON numbers rounded to 2 places, and
  timestamps cross as strings in one of the two accepted formats.

NAMING CONVENTION:
  - *DTO: Response/element types
  - *Request: Request body types from clients
  - *Response: Response wrappers

VALIDATION:
  Business validation (negative amounts, duplicate dates) happens in the
  savings package and comes back as data, not errors. DTO conversion only
  fails on malformed timestamps, which fail the whole call.

SEE ALSO:
  - handlers.go: Uses these types
  - savings: domain types these convert to/from
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/savings"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// TransactionDTO is a raw expense as submitted by the caller.
type TransactionDTO struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// EnrichedTransactionDTO is a transaction with its round-up values attached.
type EnrichedTransactionDTO struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Ceiling  float64 `json:"ceiling"`
	Remanent float64 `json:"remanent"`
}

// InvalidTransactionDTO is a rejected transaction plus the rejection reason.
type InvalidTransactionDTO struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Ceiling  float64 `json:"ceiling"`
	Remanent float64 `json:"remanent"`
	Message  string  `json:"message"`
}

// FilteredTransactionDTO is a processed transaction with the reporting-window
// membership flag. The inkPeriod name is part of the wire contract.
type FilteredTransactionDTO struct {
	Date      string  `json:"date"`
	Amount    float64 `json:"amount"`
	Ceiling   float64 `json:"ceiling"`
	Remanent  float64 `json:"remanent"`
	InKPeriod bool    `json:"inkPeriod"`
}

// RejectedTransactionDTO is the slim invalid entry used by the filter and
// returns endpoints.
type RejectedTransactionDTO struct {
	Date    string  `json:"date"`
	Amount  float64 `json:"amount"`
	Message string  `json:"message"`
}

// OverrideRuleDTO is a q period: inside [start, end] the remanent is replaced
// by fixed.
type OverrideRuleDTO struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Fixed float64 `json:"fixed"`
}

// BonusRuleDTO is a p period: inside [start, end] extra is added to the
// remanent.
type BonusRuleDTO struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Extra float64 `json:"extra"`
}

// WindowDTO is a k period: a reporting window that groups remanents.
type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ValidateRequest is the body for the validation endpoint.
type ValidateRequest struct {
	Wage         *float64         `json:"wage,omitempty"`
	Transactions []TransactionDTO `json:"transactions"`
}

// ValidateResponse splits a batch into valid and invalid entries.
type ValidateResponse struct {
	Valid   []EnrichedTransactionDTO `json:"valid"`
	Invalid []InvalidTransactionDTO  `json:"invalid"`
}

// FilterRequest is the body for the period-rules endpoint.
type FilterRequest struct {
	Q            []OverrideRuleDTO `json:"q"`
	P            []BonusRuleDTO    `json:"p"`
	K            []WindowDTO       `json:"k"`
	Wage         *float64          `json:"wage,omitempty"`
	Transactions []TransactionDTO  `json:"transactions"`
}

// FilterResponse is the result of applying period rules to a batch.
type FilterResponse struct {
	Valid   []FilteredTransactionDTO `json:"valid"`
	Invalid []RejectedTransactionDTO `json:"invalid"`
}

// ReturnsRequest is the body for both returns endpoints. Age, wage and
// inflation are required; the handlers fail fast when any is missing.
type ReturnsRequest struct {
	Q            []OverrideRuleDTO `json:"q"`
	P            []BonusRuleDTO    `json:"p"`
	K            []WindowDTO       `json:"k"`
	Age          *int              `json:"age"`
	Wage         *float64          `json:"wage"`
	Inflation    *float64          `json:"inflation"`
	Transactions []TransactionDTO  `json:"transactions"`
}

// GroupReturnDTO is the projected outcome for one reporting window. Start
// and end echo the window strings exactly as submitted.
type GroupReturnDTO struct {
	Start      string  `json:"start"`
	End        string  `json:"end"`
	Amount     float64 `json:"amount"`
	Profit     float64 `json:"profit"`
	TaxBenefit float64 `json:"taxBenefit"`
}

// ReturnsResponse is the full projection report for a batch.
type ReturnsResponse struct {
	TotalTransactionAmount float64          `json:"totalTransactionAmount"`
	TotalCeiling           float64          `json:"totalCeiling"`
	SavingsByDates         []GroupReturnDTO `json:"savingsByDates"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// money renders a decimal as a wire value, rounded to 2 places.
func money(d decimal.Decimal) float64 {
	v, _ := d.Round(2).Float64()
	return v
}

func toTransactions(dtos []TransactionDTO) []savings.Transaction {
	txs := make([]savings.Transaction, len(dtos))
	for i, dto := range dtos {
		txs[i] = savings.Transaction{
			Date:   dto.Date,
			Amount: decimal.NewFromFloat(dto.Amount),
		}
	}
	return txs
}

func toOverrideRules(dtos []OverrideRuleDTO) ([]savings.OverrideRule, error) {
	rules := make([]savings.OverrideRule, len(dtos))
	for i, dto := range dtos {
		period, err := toPeriod(dto.Start, dto.End)
		if err != nil {
			return nil, err
		}
		rules[i] = savings.OverrideRule{Period: period, Fixed: decimal.NewFromFloat(dto.Fixed)}
	}
	return rules, nil
}

func toBonusRules(dtos []BonusRuleDTO) ([]savings.BonusRule, error) {
	rules := make([]savings.BonusRule, len(dtos))
	for i, dto := range dtos {
		period, err := toPeriod(dto.Start, dto.End)
		if err != nil {
			return nil, err
		}
		rules[i] = savings.BonusRule{Period: period, Extra: decimal.NewFromFloat(dto.Extra)}
	}
	return rules, nil
}

func toWindows(dtos []WindowDTO) ([]savings.Period, error) {
	windows := make([]savings.Period, len(dtos))
	for i, dto := range dtos {
		period, err := toPeriod(dto.Start, dto.End)
		if err != nil {
			return nil, err
		}
		windows[i] = period
	}
	return windows, nil
}

func toPeriod(start, end string) (savings.Period, error) {
	from, err := savings.ParseInstant(start)
	if err != nil {
		return savings.Period{}, err
	}
	to, err := savings.ParseInstant(end)
	if err != nil {
		return savings.Period{}, err
	}
	return savings.Period{Start: from, End: to}, nil
}

// toEnrichedDTO attaches round-up values without parsing the date: the
// validation endpoint enriches entries whose dates may be malformed.
func toEnrichedDTO(tx savings.Transaction) EnrichedTransactionDTO {
	ceiling := savings.Ceiling(tx.Amount)
	remanent := savings.Remanent(tx.Amount, ceiling)
	return EnrichedTransactionDTO{
		Date:     tx.Date,
		Amount:   money(tx.Amount),
		Ceiling:  money(ceiling),
		Remanent: money(remanent),
	}
}
