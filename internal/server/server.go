// Package server exposes the salary engine over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/compare"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/valyala/fasthttp"
)

// Server handles API requests against one rate table and an optional catalog
type Server struct {
	engine  *calculation.Engine
	compare *compare.CompareEngine
	parser  *config.InputParser
	catalog *domain.Catalog
	logger  calculation.Logger

	// base bounds work that outlives the handler goroutine, such as the
	// comparison fan-out. ListenAndServe replaces it with its own ctx.
	base context.Context
}

// New creates a server. catalog may be nil, in which case only inline
// positions are accepted.
func New(engine *calculation.Engine, catalog *domain.Catalog, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger()
	}
	return &Server{
		engine:  engine,
		compare: compare.NewCompareEngine(engine),
		parser:  config.NewInputParser(),
		catalog: catalog,
		logger:  logger,
		base:    context.Background(),
	}
}

// Handler routes requests to the API endpoints
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())

		switch {
		case path == "/healthz" && ctx.IsGet():
			ctx.SetStatusCode(fasthttp.StatusOK)
			ctx.SetBodyString("ok")
		case path == "/v1/rates" && ctx.IsGet():
			s.handleRates(ctx)
		case path == "/v1/net" && ctx.IsPost():
			s.handleNet(ctx)
		case path == "/v1/gross" && ctx.IsPost():
			s.handleGross(ctx)
		case path == "/v1/full" && ctx.IsPost():
			s.handleFull(ctx)
		case path == "/v1/compare" && ctx.IsPost():
			s.handleCompare(ctx)
		case path == "/healthz" || path == "/v1/rates" || path == "/v1/net" ||
			path == "/v1/gross" || path == "/v1/full" || path == "/v1/compare":
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		default:
			writeError(ctx, fasthttp.StatusNotFound, "Not found")
		}

		s.logger.Debugf("%s %s -> %d in %s", ctx.Method(), path, ctx.Response.StatusCode(), time.Since(start))
	}
}

// ListenAndServe serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.base = ctx
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "jobcomp",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		s.logger.Infof("shutting down")
		if err := srv.Shutdown(); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}
