package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/output"
)

func newTestServer() *Server {
	return New(domain.UKPolicy2024())
}

// invoke runs one request through the router without a listener.
func invoke(s *Server, method, path, contentType string, body []byte) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI("http://localhost" + path)
	if contentType != "" {
		req.Header.SetContentType(contentType)
	}
	if len(body) > 0 {
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	s.HandleRequest(ctx)
	return ctx
}

func TestFormPage(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/", "/calculator"} {
		ctx := invoke(s, fasthttp.MethodGet, path, "", nil)

		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), path)
		body := string(ctx.Response.Body())
		assert.Contains(t, body, "<form")
		assert.Contains(t, body, `name="gross_salary"`)
		assert.Contains(t, body, "Plan 2")
		assert.Contains(t, body, "No Plan")
	}
}

func TestCalculateFormRendersResults(t *testing.T) {
	s := newTestServer()

	form := "gross_salary=40000&pension_contribution_percentage=&rent=900"
	ctx := invoke(s, fasthttp.MethodPost, "/calculate",
		"application/x-www-form-urlencoded", []byte(form))

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "Net Income")
	assert.Contains(t, body, "£32,320.08")
	assert.Contains(t, body, "£10,800.00")
	assert.Contains(t, body, "Where It Goes")
}

func TestCalculateFormRejectsMissingSalary(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodPost, "/calculate",
		"application/x-www-form-urlencoded", []byte("rent=900"))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "gross_salary is required")
	assert.Contains(t, body, "<form")
}

func TestCalculateFormRejectsBadNumber(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodPost, "/calculate",
		"application/x-www-form-urlencoded", []byte("gross_salary=lots"))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "invalid number")
}

type apiLineItem struct {
	Item   string                     `json:"item"`
	Amount map[string]decimal.Decimal `json:"amount"`
}

type apiCalculateResponse struct {
	Metadata  CalculationMetadata `json:"calculation_metadata"`
	LineItems []apiLineItem       `json:"line_items"`
	Flow      *output.Flow        `json:"flow"`
	Error     string              `json:"error"`
}

func TestCalculateAPI(t *testing.T) {
	s := newTestServer()

	payload := `{"gross_salary": 40000, "monthly_bills": [{"name": "rent", "amount": 900}]}`
	ctx := invoke(s, fasthttp.MethodPost, "/api/calculate", "application/json", []byte(payload))

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	var resp apiCalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))

	assert.Equal(t, OutcomeSuccess, resp.Metadata.CalculationOutcome)
	assert.NotEmpty(t, resp.Metadata.CalculationID)
	assert.NotEmpty(t, resp.Metadata.CalculationStartedAt)
	assert.Empty(t, resp.Error)
	require.Len(t, resp.LineItems, 13)

	byItem := make(map[string]map[string]decimal.Decimal, len(resp.LineItems))
	for _, item := range resp.LineItems {
		byItem[item.Item] = item.Amount
	}
	net := byItem["Net Income"]
	require.NotNil(t, net)
	assert.True(t, net["annual"].Equal(decimal.RequireFromString("32320.08")),
		"net income annual = %s", net["annual"])
	bills := byItem["Bills"]
	require.NotNil(t, bills)
	assert.True(t, bills["monthly"].Equal(decimal.NewFromInt(900)),
		"bills monthly = %s", bills["monthly"])

	require.NotNil(t, resp.Flow)
	assert.Len(t, resp.Flow.Nodes, 11)
	assert.Len(t, resp.Flow.Links, 10)
}

func TestCalculateAPIRejectsInvalidProfile(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodPost, "/api/calculate",
		"application/json", []byte(`{"gross_salary": -1}`))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp apiCalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, OutcomeFailure, resp.Metadata.CalculationOutcome)
	assert.Contains(t, resp.Error, "gross salary")
	assert.Empty(t, resp.LineItems)
	assert.Nil(t, resp.Flow)
}

func TestCalculateAPIRejectsMalformedBody(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodPost, "/api/calculate",
		"application/json", []byte("{not json"))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
	assert.Contains(t, resp.Message, "Invalid request body")
}

func TestCalculateAPISurfacesUnknownPlan(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodPost, "/api/calculate",
		"application/json", []byte(`{"gross_salary": 40000, "student_loan_plan": "Plan 9"}`))

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp apiCalculateResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, OutcomeFailure, resp.Metadata.CalculationOutcome)
	assert.Contains(t, resp.Error, "Plan 9")
}

func TestPolicyEndpoint(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodGet, "/api/policy", "", nil)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	body := string(ctx.Response.Body())
	assert.Contains(t, body, "2024/25")
	assert.Contains(t, body, "Plan 2")
	assert.Contains(t, body, "tax_bands")
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer()

	ctx := invoke(s, fasthttp.MethodGet, "/nope", "", nil)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "No route for GET /nope")

	post := invoke(s, fasthttp.MethodPost, "/api/policy", "", nil)
	assert.Equal(t, fasthttp.StatusNotFound, post.Response.StatusCode())
}
