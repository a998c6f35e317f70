package config

import "errors"

// Data-entry validation errors. Wrapped with the offending record, so check
// them with errors.Is.
var (
	ErrNoPositions        = errors.New("no positions provided")
	ErrMissingName        = errors.New("name is required")
	ErrInvalidPayBasis    = errors.New("pay basis must be monthly or hourly")
	ErrInvalidBase        = errors.New("base pay must be positive")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrUnknownCompany     = errors.New("unknown company")
	ErrDuplicateBenefit   = errors.New("duplicate benefit key")
	ErrInvalidBenefit     = errors.New("invalid benefit")
	ErrInvalidRange       = errors.New("invalid range")
	ErrInvalidRate        = errors.New("invalid rate setting")
	ErrInvalidPerformance = errors.New("performance percent must be between 0 and 100")
	ErrInvalidDeductions  = errors.New("invalid deductions")
)
