package server

import (
	_ "embed"
	"html/template"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
	"github.com/ukpay/takehome/internal/output"
)

//go:embed templates/form.html.tmpl
var formTemplateSource string

//go:embed templates/results.html.tmpl
var resultsTemplateSource string

var (
	formTemplate    = template.Must(template.New("form").Parse(formTemplateSource))
	resultsTemplate = template.Must(template.New("results").Parse(resultsTemplateSource))
)

type formData struct {
	Plans []string
	Error string
}

type resultRow struct {
	Label     string
	Breakdown domain.PeriodBreakdown
}

type flowRow struct {
	From  string
	To    string
	Value string
}

type resultsData struct {
	GeneratedAt string
	Rows        []resultRow
	FlowRows    []flowRow
}

func (s *Server) handleForm(ctx *fasthttp.RequestCtx) {
	s.renderForm(ctx, fasthttp.StatusOK, "")
}

func (s *Server) handleCalculateForm(ctx *fasthttp.RequestCtx) {
	profile, err := profileFromForm(ctx.PostArgs())
	if err != nil {
		s.renderForm(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := calculation.ComputeWithPolicy(profile, s.policy)
	if err != nil {
		s.renderForm(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	flow := output.BuildFlow(result)
	data := resultsData{
		GeneratedAt: time.Now().Format("2 January 2006 15:04"),
	}
	for _, line := range result.Lines() {
		data.Rows = append(data.Rows, resultRow{
			Label:     line.Label,
			Breakdown: line.Amount.Format("£"),
		})
	}
	for _, link := range flow.Links {
		data.FlowRows = append(data.FlowRows, flowRow{
			From:  flow.Nodes[link.Source],
			To:    flow.Nodes[link.Target],
			Value: domain.FormatGBP(link.Value.Round(2)),
		})
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("text/html; charset=utf-8")
	if err := resultsTemplate.Execute(ctx, data); err != nil {
		s.logger.Errorf("results render failed: %v", err)
		ctx.Error("template error", fasthttp.StatusInternalServerError)
	}
}

func (s *Server) renderForm(ctx *fasthttp.RequestCtx, status int, errMsg string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("text/html; charset=utf-8")
	if err := formTemplate.Execute(ctx, formData{Plans: s.policy.PlanNames(), Error: errMsg}); err != nil {
		s.logger.Errorf("form render failed: %v", err)
		ctx.Error("template error", fasthttp.StatusInternalServerError)
	}
}
