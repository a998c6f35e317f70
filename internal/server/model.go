package server

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// NetRequest asks for the net salary of a gross amount
type NetRequest struct {
	Gross      decimal.Decimal        `json:"gross"`
	Deductions *domain.UserDeductions `json:"deductions,omitempty"`
}

// PositionRequest carries a position either inline or as a reference into
// the loaded catalog
type PositionRequest struct {
	Position    *domain.Position       `json:"position,omitempty"`
	PositionRef string                 `json:"position_ref,omitempty"`
	Mode        string                 `json:"mode,omitempty"`
	Deductions  *domain.UserDeductions `json:"deductions,omitempty"`
	Overrides   domain.Overrides       `json:"overrides"`
}

// GrossResponse is the gross salary with each benefit's value
type GrossResponse struct {
	Mode     domain.Mode          `json:"mode"`
	Gross    decimal.Decimal      `json:"gross"`
	Benefits []domain.BenefitLine `json:"benefits"`
}

// CompareRequest selects catalog positions to compare
type CompareRequest struct {
	Positions  []string               `json:"positions"`
	Deductions *domain.UserDeductions `json:"deductions,omitempty"`
	Overrides  domain.Overrides       `json:"overrides"`
}

// RatesResponse lists the effective rate table
type RatesResponse struct {
	Settings []domain.RateSetting `json:"settings"`
}

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
