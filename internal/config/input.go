package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of positions and tax settings files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// RateFile is the contents of a tax settings file
type RateFile struct {
	Settings []domain.RateSetting `yaml:"tax_settings"`
}

// LoadedRates is a parsed tax settings file. Warnings lists rows the engine
// will not read (unknown keys).
type LoadedRates struct {
	Table    domain.RateTable
	Settings []domain.RateSetting
	Warnings []string
}

// LoadCatalog loads a positions file, assigns missing IDs, resolves company
// names and validates the result
func (ip *InputParser) LoadCatalog(filename string) (*domain.Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseCatalog(data)
}

// ParseCatalog is LoadCatalog for in-memory YAML
func (ip *InputParser) ParseCatalog(data []byte) (*domain.Catalog, error) {
	var catalog domain.Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.normalizeCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	if err := ip.ValidateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	return &catalog, nil
}

// SaveCatalog writes a catalog back as YAML. Benefits are always written in
// the current shape, so loading and saving migrates legacy files.
func (ip *InputParser) SaveCatalog(filename string, catalog *domain.Catalog) error {
	data, err := yaml.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// LoadRateTable loads a tax settings file. A zero asOf uses the latest row
// per key.
func (ip *InputParser) LoadRateTable(filename string, asOf time.Time) (*LoadedRates, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.ParseRateTable(data, asOf)
}

// ParseRateTable is LoadRateTable for in-memory YAML
func (ip *InputParser) ParseRateTable(data []byte, asOf time.Time) (*LoadedRates, error) {
	var file RateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	loaded := &LoadedRates{Settings: file.Settings}
	for i, s := range file.Settings {
		if !s.Key.IsKnown() {
			loaded.Warnings = append(loaded.Warnings, fmt.Sprintf("tax setting %d: unknown key %q is ignored", i, s.Key))
			continue
		}
		if err := ip.validateRateSetting(s); err != nil {
			return nil, fmt.Errorf("tax setting %d (%s): %w", i, s.Key, err)
		}
	}

	if asOf.IsZero() {
		loaded.Table = domain.NewRateTable(file.Settings)
	} else {
		loaded.Table = domain.NewRateTableAsOf(file.Settings, asOf)
	}
	for _, key := range domain.KnownRateKeys() {
		if _, ok := loaded.Table.Lookup(key); !ok {
			loaded.Warnings = append(loaded.Warnings, fmt.Sprintf("tax setting %s missing, using default %s", key, key.Default()))
		}
	}
	return loaded, nil
}

func (ip *InputParser) validateRateSetting(s domain.RateSetting) error {
	if s.Value.IsNegative() {
		return fmt.Errorf("%w: value %s is negative", ErrInvalidRate, s.Value)
	}
	if s.Unit == domain.UnitPercent && s.Value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentage %s is above 100", ErrInvalidRate, s.Value)
	}
	switch s.Unit {
	case "", domain.UnitPercent, domain.UnitCurrency:
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRate, s.Unit)
	}
	return nil
}

// normalizeCatalog fills IDs, default pay basis and company references
func (ip *InputParser) normalizeCatalog(catalog *domain.Catalog) error {
	byName := make(map[string]uuid.UUID, len(catalog.Companies))
	for i := range catalog.Companies {
		c := &catalog.Companies[i]
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		byName[c.Name] = c.ID
	}

	for i := range catalog.Positions {
		p := &catalog.Positions[i]
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		if p.PayBasis == "" {
			p.PayBasis = domain.PayMonthly
		}
		if p.CompanyID == uuid.Nil && p.CompanyName != "" {
			id, ok := byName[p.CompanyName]
			if !ok {
				return fmt.Errorf("position %d (%s): %w %q", i, p.Name, ErrUnknownCompany, p.CompanyName)
			}
			p.CompanyID = id
		}
	}
	return nil
}

// ValidateCatalog checks a catalog at data-entry time. The engine itself
// accepts anything; this is where inconsistent ranges are rejected.
func (ip *InputParser) ValidateCatalog(catalog *domain.Catalog) error {
	if len(catalog.Positions) == 0 {
		return ErrNoPositions
	}

	companies := make(map[uuid.UUID]bool, len(catalog.Companies))
	for i, c := range catalog.Companies {
		if c.Name == "" {
			return fmt.Errorf("company %d: %w", i, ErrMissingName)
		}
		companies[c.ID] = true
	}

	for i := range catalog.Positions {
		p := &catalog.Positions[i]
		if err := ip.ValidatePosition(p); err != nil {
			return fmt.Errorf("position %d (%s): %w", i, p.Name, err)
		}
		if p.CompanyID != uuid.Nil && !companies[p.CompanyID] {
			return fmt.Errorf("position %d (%s): %w %s", i, p.Name, ErrUnknownCompany, p.CompanyID)
		}
	}
	return nil
}

// ValidatePosition validates a single position and its benefits
func (ip *InputParser) ValidatePosition(p *domain.Position) error {
	if p.Name == "" {
		return ErrMissingName
	}

	switch p.PayBasis {
	case domain.PayMonthly, "":
		if !p.BaseSalary.IsPositive() {
			return fmt.Errorf("%w: base_salary %s", ErrInvalidBase, p.BaseSalary)
		}
	case domain.PayHourly:
		if !p.BaseHourlyRate.IsPositive() {
			return fmt.Errorf("%w: base_hourly_rate %s", ErrInvalidBase, p.BaseHourlyRate)
		}
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidPayBasis, p.PayBasis)
	}

	if p.HousingAllowance.IsNegative() {
		return fmt.Errorf("housing_allowance: %w", ErrNegativeAmount)
	}
	if p.WorkingHoursFund.IsNegative() {
		return fmt.Errorf("working_hours_fund: %w", ErrNegativeAmount)
	}

	seen := make(map[string]bool, len(p.Benefits))
	for _, b := range p.Benefits {
		if b.Key == "" {
			return fmt.Errorf("benefit %q: key %w", b.Name, ErrMissingName)
		}
		if seen[b.Key] {
			return fmt.Errorf("%w %q", ErrDuplicateBenefit, b.Key)
		}
		seen[b.Key] = true

		if err := ip.ValidateBenefit(b); err != nil {
			return fmt.Errorf("benefit %s: %w", b.Key, err)
		}
	}
	return nil
}

// ValidateBenefit checks the enum fields and range of one benefit
func (ip *InputParser) ValidateBenefit(b domain.Benefit) error {
	switch calc := b.Calculation.(type) {
	case domain.FixedAmount:
	case domain.Percentage:
		switch calc.Base {
		case domain.BaseSalary, domain.BaseHourly, "":
		case domain.BaseCustomAmount:
			if !calc.CustomBase.IsPositive() {
				return fmt.Errorf("%w: custom_amount base needs a positive base_amount", ErrInvalidBenefit)
			}
		default:
			return fmt.Errorf("%w: unknown base %q", ErrInvalidBenefit, calc.Base)
		}
		if calc.Unit != "" && calc.Unit != domain.PerHour && calc.Unit != domain.PerMonth {
			return fmt.Errorf("%w: percentage unit must be hour or month, got %q", ErrInvalidBenefit, calc.Unit)
		}
		if err := validUnitsSource(calc.UnitsSource); err != nil {
			return err
		}
		if calc.FloorPerUnit.IsNegative() {
			return fmt.Errorf("floor_per_unit: %w", ErrNegativeAmount)
		}
	case domain.Rate:
		switch calc.Unit {
		case domain.PerMonth, domain.PerHour, domain.PerShift, domain.PerDay:
		default:
			return fmt.Errorf("%w: unknown unit %q", ErrInvalidBenefit, calc.Unit)
		}
		if err := validUnitsSource(calc.UnitsSource); err != nil {
			return err
		}
		if calc.UnitsSource == domain.UnitsCustom && !calc.UnitsValue.IsPositive() {
			return fmt.Errorf("%w: custom_units needs a positive units_value", ErrInvalidBenefit)
		}
	case nil:
		return fmt.Errorf("%w: calculation is required", ErrInvalidBenefit)
	}

	switch b.Rounding {
	case "", domain.RoundNearest, domain.RoundNone, domain.RoundCeil, domain.RoundFloor:
	default:
		return fmt.Errorf("%w: unknown rounding %q", ErrInvalidBenefit, b.Rounding)
	}
	if b.CapAmount.IsNegative() {
		return fmt.Errorf("cap_amount: %w", ErrNegativeAmount)
	}

	return ValidateRange(b.Range)
}

func validUnitsSource(s domain.UnitsSource) error {
	switch s {
	case domain.UnitsUnset, domain.UnitsWorkingHoursFund, domain.UnitsNightHours,
		domain.UnitsAfternoonHours, domain.UnitsWeekendHours, domain.UnitsCustom:
		return nil
	}
	return fmt.Errorf("%w: unknown units_source %q", ErrInvalidBenefit, s)
}

// ValidateRange requires min and max on an active range and
// min <= expected <= max
func ValidateRange(r *domain.Range) error {
	if r == nil || !r.IsRange {
		return nil
	}
	if r.Min == nil || r.Max == nil {
		return fmt.Errorf("%w: min and max are required", ErrInvalidRange)
	}
	if r.Min.GreaterThan(*r.Max) {
		return fmt.Errorf("%w: min %s is greater than max %s", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Expected != nil && (r.Expected.LessThan(*r.Min) || r.Expected.GreaterThan(*r.Max)) {
		return fmt.Errorf("%w: expected %s is outside %s..%s", ErrInvalidRange, r.Expected, r.Min, r.Max)
	}
	return nil
}

// ValidatePerformance checks a user-supplied performance percent
func ValidatePerformance(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w, got %s", ErrInvalidPerformance, p)
	}
	return nil
}

// ValidateDeductions checks user elections
func ValidateDeductions(d domain.UserDeductions) error {
	if d.Children < 0 {
		return fmt.Errorf("%w: children cannot be negative", ErrInvalidDeductions)
	}
	switch d.Disability {
	case "", domain.DisabilityNone, domain.DisabilityTier1, domain.DisabilityTier2, domain.DisabilityTier3:
		return nil
	}
	return fmt.Errorf("%w: unknown disability tier %q", ErrInvalidDeductions, d.Disability)
}
