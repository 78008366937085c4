/*
handlers.go - HTTP API handlers for the savings engine

PURPOSE:
  Exposes the round-up savings pipeline via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the savings and
  returns packages.

ENDPOINTS:
  POST /api/v1/transactions:parse     Round-up values per transaction
  POST /api/v1/transactions:validate  Valid/invalid split with reasons
  POST /api/v1/transactions:filter    q/p/k period rules applied
  POST /api/v1/returns:pension        Projection, pension product
  POST /api/v1/returns:index          Projection, index fund product
  GET  /api/v1/performance            Process self-report
  GET  /health                        Liveness

REQUEST FLOW:
  1. Decode JSON body
  2. Convert DTOs to domain values (timestamps parsed here)
  3. Run the pure pipeline
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, unparsable timestamps, missing age/wage/inflation
  - 500: Anything else (nothing in the pipeline should get here)
  Invalid transactions are NOT errors; they come back in the invalid list.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - perf.go: Performance and health handlers
*/
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/savings-engine/returns"
	"github.com/warp/savings-engine/savings"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the handlers' shared state. The pipeline itself is pure, so
// the only state is the start time used by the performance report.
type Handler struct {
	started time.Time
}

// NewHandler creates a new handler.
func NewHandler() *Handler {
	return &Handler{started: time.Now()}
}

// =============================================================================
// TRANSACTION HANDLERS
// =============================================================================

// ParseTransactions enriches raw expenses with ceiling and remanent values.
// No validation, no period rules.
func (h *Handler) ParseTransactions(w http.ResponseWriter, r *http.Request) {
	var dtos []TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	out := make([]EnrichedTransactionDTO, 0, len(dtos))
	for _, tx := range toTransactions(dtos) {
		out = append(out, toEnrichedDTO(tx))
	}
	writeJSON(w, http.StatusOK, out)
}

// ValidateTransactions splits a batch into valid and invalid entries.
// Dates are never parsed here: validation works on the raw strings.
func (h *Handler) ValidateTransactions(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	valid, invalid := savings.Validate(toTransactions(req.Transactions))

	resp := ValidateResponse{
		Valid:   make([]EnrichedTransactionDTO, 0, len(valid)),
		Invalid: make([]InvalidTransactionDTO, 0, len(invalid)),
	}
	for _, tx := range valid {
		resp.Valid = append(resp.Valid, toEnrichedDTO(tx))
	}
	for _, tx := range invalid {
		enriched := toEnrichedDTO(tx.Transaction)
		resp.Invalid = append(resp.Invalid, InvalidTransactionDTO{
			Date:     enriched.Date,
			Amount:   enriched.Amount,
			Ceiling:  enriched.Ceiling,
			Remanent: enriched.Remanent,
			Message:  tx.Message,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// FilterTransactions validates a batch, applies the q/p override rules, and
// flags each valid transaction with its k-window membership.
func (h *Handler) FilterTransactions(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	overrides, err := toOverrideRules(req.Q)
	if err != nil {
		respondError(w, err)
		return
	}
	bonuses, err := toBonusRules(req.P)
	if err != nil {
		respondError(w, err)
		return
	}
	windows, err := toWindows(req.K)
	if err != nil {
		respondError(w, err)
		return
	}

	valid, invalid := savings.Validate(toTransactions(req.Transactions))
	processed, err := savings.Process(valid, overrides, bonuses)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := FilterResponse{
		Valid:   make([]FilteredTransactionDTO, 0, len(processed)),
		Invalid: make([]RejectedTransactionDTO, 0, len(invalid)),
	}
	for _, tx := range processed {
		resp.Valid = append(resp.Valid, FilteredTransactionDTO{
			Date:      tx.Date,
			Amount:    money(tx.Amount),
			Ceiling:   money(tx.Ceiling),
			Remanent:  money(tx.Remanent),
			InKPeriod: savings.InAnyWindow(tx.At, windows),
		})
	}
	for _, tx := range invalid {
		resp.Invalid = append(resp.Invalid, RejectedTransactionDTO{
			Date:    tx.Date,
			Amount:  money(tx.Amount),
			Message: tx.Message,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// RETURNS HANDLERS
// =============================================================================

// PensionReturns projects grouped savings under the pension scheme.
func (h *Handler) PensionReturns(w http.ResponseWriter, r *http.Request) {
	h.computeReturns(w, r, returns.ProductPension)
}

// IndexReturns projects grouped savings under the index fund.
func (h *Handler) IndexReturns(w http.ResponseWriter, r *http.Request) {
	h.computeReturns(w, r, returns.ProductIndex)
}

func (h *Handler) computeReturns(w http.ResponseWriter, r *http.Request, product returns.Product) {
	var req ReturnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Age == nil {
		respondError(w, &savings.MissingFieldError{Field: "age"})
		return
	}
	if req.Wage == nil {
		respondError(w, &savings.MissingFieldError{Field: "wage"})
		return
	}
	if req.Inflation == nil {
		respondError(w, &savings.MissingFieldError{Field: "inflation"})
		return
	}

	overrides, err := toOverrideRules(req.Q)
	if err != nil {
		respondError(w, err)
		return
	}
	bonuses, err := toBonusRules(req.P)
	if err != nil {
		respondError(w, err)
		return
	}
	windows, err := toWindows(req.K)
	if err != nil {
		respondError(w, err)
		return
	}

	valid, _ := savings.Validate(toTransactions(req.Transactions))
	processed, err := savings.Process(valid, overrides, bonuses)
	if err != nil {
		respondError(w, err)
		return
	}

	totalAmount := decimal.Zero
	totalCeiling := decimal.Zero
	for _, tx := range processed {
		totalAmount = totalAmount.Add(tx.Amount)
		totalCeiling = totalCeiling.Add(tx.Ceiling)
	}

	groups := savings.GroupByWindows(processed, windows)
	projected := returns.ProjectGroups(
		groups, product, *req.Age,
		decimal.NewFromFloat(*req.Wage), decimal.NewFromFloat(*req.Inflation),
	)

	resp := ReturnsResponse{
		TotalTransactionAmount: money(totalAmount),
		TotalCeiling:           money(totalCeiling),
		SavingsByDates:         make([]GroupReturnDTO, 0, len(projected)),
	}
	// Window order is preserved end to end, so index i of the projections
	// matches the i-th submitted window; echo its raw start/end strings.
	for i, g := range projected {
		resp.SavingsByDates = append(resp.SavingsByDates, GroupReturnDTO{
			Start:      req.K[i].Start,
			End:        req.K[i].End,
			Amount:     money(g.Amount),
			Profit:     money(g.Profit),
			TaxBenefit: money(g.TaxBenefit),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Message = err.Error()
	}
	writeJSON(w, status, resp)
}

// respondError maps pipeline errors to HTTP statuses: client input problems
// (unparsable timestamps, missing fields) are 400, the rest 500.
func respondError(w http.ResponseWriter, err error) {
	if savings.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "Invalid request", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal error", err)
}
