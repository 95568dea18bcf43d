package server

import (
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/output"
)

// CalculationMetadata describes one API calculation run.
type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)

// LineItem is one statement line with its three period views.
type LineItem struct {
	Item   string              `json:"item"`
	Amount domain.PeriodAmount `json:"amount"`
}

// CalculateResponse is the JSON API envelope. On failure the line items
// and flow are absent and Error carries the reason.
type CalculateResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	LineItems           []LineItem          `json:"line_items,omitempty"`
	Flow                *output.Flow        `json:"flow,omitempty"`
	Error               string              `json:"error,omitempty"`
}

// ErrorResponse is the JSON body for requests rejected before any
// calculation ran.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleCalculateAPI(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	var profile domain.UserFinancialProfile
	if err := json.Unmarshal(ctx.PostBody(), &profile); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if profile.StudentLoanPlan == "" {
		profile.StudentLoanPlan = domain.PlanNone
	}

	result, err := calculation.ComputeWithPolicy(profile, s.policy)
	if err != nil {
		s.logger.Warnf("calculation rejected: %v", err)
		writeJSON(ctx, fasthttp.StatusBadRequest, CalculateResponse{
			CalculationMetadata: buildMetadata(start, OutcomeFailure),
			Error:               err.Error(),
		})
		return
	}

	lines := result.Lines()
	items := make([]LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, LineItem{Item: line.Label, Amount: line.Amount})
	}
	flow := output.BuildFlow(result)

	s.logger.Debugf("api calculation for gross %s completed in %s",
		profile.GrossSalary, time.Since(start))

	writeJSON(ctx, fasthttp.StatusOK, CalculateResponse{
		CalculationMetadata: buildMetadata(start, OutcomeSuccess),
		LineItems:           items,
		Flow:                &flow,
	})
}

func (s *Server) handlePolicy(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, s.policy)
}

func buildMetadata(start time.Time, outcome string) CalculationMetadata {
	elapsed := time.Since(start)
	now := time.Now().UTC()

	return CalculationMetadata{
		CalculationID:          uuid.New().String(),
		CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
		CalculationCompletedAt: now.Format(time.RFC3339),
		CalculationDurationMs:  elapsed.Milliseconds(),
		CalculationOutcome:     outcome,
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"status":500,"message":"response encoding failed"}`)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}
