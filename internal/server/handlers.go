package server

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jobcomp/jobcomp/internal/compare"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/valyala/fasthttp"
)

var errNoCatalog = errors.New("no positions file loaded")

func (s *Server) handleRates(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, RatesResponse{Settings: s.engine.Rates.Settings()})
}

func (s *Server) handleNet(ctx *fasthttp.RequestCtx) {
	var req NetRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Gross.IsNegative() {
		writeError(ctx, fasthttp.StatusBadRequest, "gross cannot be negative")
		return
	}
	d, err := deductionsOrDefault(req.Deductions)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, s.engine.Net(req.Gross, d))
}

func (s *Server) handleGross(ctx *fasthttp.RequestCtx) {
	req, p, ok := s.decodePositionRequest(ctx)
	if !ok {
		return
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, GrossResponse{
		Mode:     mode,
		Gross:    s.engine.Gross(p, mode, req.Overrides),
		Benefits: s.engine.Benefits(p, mode, req.Overrides),
	})
}

func (s *Server) handleFull(ctx *fasthttp.RequestCtx) {
	req, p, ok := s.decodePositionRequest(ctx)
	if !ok {
		return
	}
	d, err := deductionsOrDefault(req.Deductions)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, s.engine.Full(p, d, req.Overrides))
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	if s.catalog == nil {
		writeError(ctx, fasthttp.StatusBadRequest, errNoCatalog.Error())
		return
	}
	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	d, err := deductionsOrDefault(req.Deductions)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	if err := validateOverrides(req.Overrides); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	// RequestCtx must not leave the handler goroutine
	compSet, err := s.compare.Compare(s.base, s.catalog, compare.CompareOptions{
		Positions:  req.Positions,
		Deductions: d,
		Overrides:  req.Overrides,
	})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		writeError(ctx, fasthttp.StatusServiceUnavailable, "Server is shutting down")
		return
	}
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, compSet)
}

// decodePositionRequest resolves the position of a request. On failure the
// error reply is already written.
func (s *Server) decodePositionRequest(ctx *fasthttp.RequestCtx) (PositionRequest, domain.Position, bool) {
	var req PositionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return req, domain.Position{}, false
	}
	if err := validateOverrides(req.Overrides); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return req, domain.Position{}, false
	}

	switch {
	case req.Position != nil:
		p := *req.Position
		if err := s.parser.ValidatePosition(&p); err != nil {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid position: "+err.Error())
			return req, domain.Position{}, false
		}
		return req, p, true
	case req.PositionRef != "":
		if s.catalog == nil {
			writeError(ctx, fasthttp.StatusBadRequest, errNoCatalog.Error())
			return req, domain.Position{}, false
		}
		p, ok := s.catalog.FindPosition(req.PositionRef)
		if !ok {
			writeError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("position %s not found", req.PositionRef))
			return req, domain.Position{}, false
		}
		return req, p, true
	}
	writeError(ctx, fasthttp.StatusBadRequest, "position or position_ref is required")
	return req, domain.Position{}, false
}

func deductionsOrDefault(d *domain.UserDeductions) (domain.UserDeductions, error) {
	if d == nil {
		return domain.DefaultDeductions(), nil
	}
	if err := config.ValidateDeductions(*d); err != nil {
		return domain.UserDeductions{}, err
	}
	return *d, nil
}

func validateOverrides(o domain.Overrides) error {
	if o.PerformancePercent == nil {
		return nil
	}
	return config.ValidatePerformance(*o.PerformancePercent)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
