package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayBasis tells which base figure of a position is authoritative
type PayBasis string

const (
	PayMonthly PayBasis = "monthly"
	PayHourly  PayBasis = "hourly"
)

// DefaultWorkingHoursFund is the monthly hours fund used when a position has none
var DefaultWorkingHoursFund = decimal.NewFromFloat(157.5)

// Company is the employer behind one or more positions. Display only.
type Company struct {
	ID      uuid.UUID `yaml:"id" json:"id"`
	Name    string    `yaml:"name" json:"name"`
	City    string    `yaml:"city,omitempty" json:"city,omitempty"`
	Address string    `yaml:"address,omitempty" json:"address,omitempty"`
	WebURL  string    `yaml:"web_url,omitempty" json:"web_url,omitempty"`
}

// Position is a job opening with its compensation structure
type Position struct {
	ID               uuid.UUID       `yaml:"id" json:"id"`
	CompanyID        uuid.UUID       `yaml:"company_id,omitempty" json:"company_id,omitempty"`
	CompanyName      string          `yaml:"company,omitempty" json:"company,omitempty"`
	Name             string          `yaml:"name" json:"name"`
	Department       string          `yaml:"department,omitempty" json:"department,omitempty"`
	ShiftType        string          `yaml:"shift_type,omitempty" json:"shift_type,omitempty"`
	EvaluationLevel  string          `yaml:"evaluation_level,omitempty" json:"evaluation_level,omitempty"`
	PayBasis         PayBasis        `yaml:"pay_basis" json:"pay_basis"`
	BaseSalary       decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	BaseHourlyRate   decimal.Decimal `yaml:"base_hourly_rate" json:"base_hourly_rate"`
	HousingAllowance decimal.Decimal `yaml:"housing_allowance" json:"housing_allowance"`
	WorkingHoursFund decimal.Decimal `yaml:"working_hours_fund" json:"working_hours_fund"`
	Benefits         []Benefit       `yaml:"benefits,omitempty" json:"benefits,omitempty"`
}

// Fund returns the working-hours fund, defaulting to 157.5 when unset or zero
func (p Position) Fund() decimal.Decimal {
	if p.WorkingHoursFund.LessThanOrEqual(decimal.Zero) {
		return DefaultWorkingHoursFund
	}
	return p.WorkingHoursFund
}

// IsHourly reports whether the hourly rate is authoritative
func (p Position) IsHourly() bool {
	return p.PayBasis == PayHourly
}

// Catalog is the contents of a positions file
type Catalog struct {
	Companies []Company  `yaml:"companies" json:"companies"`
	Positions []Position `yaml:"positions" json:"positions"`
}

// Company returns the company a position belongs to
func (c *Catalog) Company(id uuid.UUID) (Company, bool) {
	for _, co := range c.Companies {
		if co.ID == id {
			return co, true
		}
	}
	return Company{}, false
}

// FindPosition looks a position up by ID string or by exact name
func (c *Catalog) FindPosition(ref string) (Position, bool) {
	if id, err := uuid.Parse(ref); err == nil {
		for _, p := range c.Positions {
			if p.ID == id {
				return p, true
			}
		}
	}
	for _, p := range c.Positions {
		if p.Name == ref {
			return p, true
		}
	}
	return Position{}, false
}
