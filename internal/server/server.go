package server

import (
	"github.com/valyala/fasthttp"

	"github.com/ukpay/takehome/internal/calculation"
	"github.com/ukpay/takehome/internal/domain"
)

// Server exposes the calculator over HTTP: an HTML form for browsers
// plus a JSON API. Each request runs its own calculation, so the
// handlers are safe to call concurrently.
type Server struct {
	policy domain.TaxPolicy
	logger calculation.Logger
}

// New creates a server calculating under the given policy.
func New(policy domain.TaxPolicy) *Server {
	return &Server{
		policy: policy,
		logger: calculation.NopLogger{},
	}
}

// SetLogger directs request logging. A nil logger silences it.
func (s *Server) SetLogger(logger calculation.Logger) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	s.logger = logger
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Infof("web calculator listening on %s", addr)
	return fasthttp.ListenAndServe(addr, s.HandleRequest)
}

// HandleRequest routes every incoming request.
func (s *Server) HandleRequest(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case (path == "/" || path == "/calculator") && method == fasthttp.MethodGet:
		s.handleForm(ctx)
	case path == "/calculate" && method == fasthttp.MethodPost:
		s.handleCalculateForm(ctx)
	case path == "/api/calculate" && method == fasthttp.MethodPost:
		s.handleCalculateAPI(ctx)
	case path == "/api/policy" && method == fasthttp.MethodGet:
		s.handlePolicy(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "No route for "+method+" "+path)
	}
}
