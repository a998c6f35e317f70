package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// RateKey identifies one legal parameter in the tax settings table
type RateKey string

const (
	RateSocialInsurance RateKey = "social_insurance"
	RateHealthInsurance RateKey = "health_insurance"
	RateIncomeTax       RateKey = "income_tax"

	CreditTaxpayer    RateKey = "sleva_poplatnik"
	CreditChild1      RateKey = "sleva_dite_1"
	CreditChild2      RateKey = "sleva_dite_2"
	CreditChild3      RateKey = "sleva_dite_3"
	CreditDisability1 RateKey = "sleva_inv_1"
	CreditDisability2 RateKey = "sleva_inv_2"
	CreditDisability3 RateKey = "sleva_inv_3"
	CreditZTPP        RateKey = "sleva_ztpp"
	CreditStudent     RateKey = "sleva_student"
)

// RateUnit tells whether a setting is a percentage or a CZK amount
type RateUnit string

const (
	UnitPercent  RateUnit = "percent"
	UnitCurrency RateUnit = "currency"
)

// RateCategory groups settings for display
type RateCategory string

const (
	CategoryInsurance RateCategory = "insurance"
	CategoryTax       RateCategory = "tax"
	CategoryDeduction RateCategory = "deduction"
)

// rateDefault is the legal fallback used when a key is missing from the table
type rateDefault struct {
	Name     string
	Value    decimal.Decimal
	Unit     RateUnit
	Category RateCategory
}

// Fallback values follow the 2024/2025 Czech payroll rules.
var rateDefaults = map[RateKey]rateDefault{
	RateSocialInsurance: {"Sociální pojištění", decimal.NewFromFloat(7.1), UnitPercent, CategoryInsurance},
	RateHealthInsurance: {"Zdravotní pojištění", decimal.NewFromFloat(4.5), UnitPercent, CategoryInsurance},
	RateIncomeTax:       {"Daň z příjmu", decimal.NewFromInt(15), UnitPercent, CategoryTax},
	CreditTaxpayer:      {"Sleva na poplatníka", decimal.NewFromInt(2570), UnitCurrency, CategoryDeduction},
	CreditChild1:        {"Sleva na 1. dítě", decimal.NewFromInt(1267), UnitCurrency, CategoryDeduction},
	CreditChild2:        {"Sleva na 2. dítě", decimal.NewFromInt(1860), UnitCurrency, CategoryDeduction},
	CreditChild3:        {"Sleva na 3. a další dítě", decimal.NewFromInt(2320), UnitCurrency, CategoryDeduction},
	CreditDisability1:   {"Invalidita 1. stupně", decimal.NewFromInt(210), UnitCurrency, CategoryDeduction},
	CreditDisability2:   {"Invalidita 2. stupně", decimal.NewFromInt(210), UnitCurrency, CategoryDeduction},
	CreditDisability3:   {"Invalidita 3. stupně", decimal.NewFromInt(420), UnitCurrency, CategoryDeduction},
	CreditZTPP:          {"Držitel ZTP/P", decimal.NewFromInt(1345), UnitCurrency, CategoryDeduction},
	CreditStudent:       {"Sleva na studenta", decimal.NewFromInt(335), UnitCurrency, CategoryDeduction},
}

// KnownRateKeys returns every key the engine reads, sorted
func KnownRateKeys() []RateKey {
	keys := make([]RateKey, 0, len(rateDefaults))
	for k := range rateDefaults {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsKnown reports whether the engine reads this key
func (k RateKey) IsKnown() bool {
	_, ok := rateDefaults[k]
	return ok
}

// Default returns the fallback value for the key (zero for unknown keys)
func (k RateKey) Default() decimal.Decimal {
	return rateDefaults[k].Value
}

// RateSetting is one row of the tax settings table
type RateSetting struct {
	Key         RateKey         `yaml:"key" json:"key"`
	Name        string          `yaml:"name" json:"name"`
	Value       decimal.Decimal `yaml:"value" json:"value"`
	Unit        RateUnit        `yaml:"type" json:"type"`
	Category    RateCategory    `yaml:"category" json:"category"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	ValidFrom   time.Time       `yaml:"valid_from" json:"valid_from"`
}

// RateTable is an immutable snapshot of rate settings keyed by RateKey.
// Lookups never fail: a missing key resolves to its legal default.
type RateTable struct {
	settings map[RateKey]RateSetting
}

// NewRateTable builds a table from settings. When a key repeats, the row with
// the latest ValidFrom wins.
func NewRateTable(settings []RateSetting) RateTable {
	return buildRateTable(settings, time.Time{})
}

// NewRateTableAsOf builds a table using only rows effective on or before asOf
func NewRateTableAsOf(settings []RateSetting, asOf time.Time) RateTable {
	return buildRateTable(settings, asOf)
}

// DefaultRateTable returns an empty table, so every lookup uses the defaults
func DefaultRateTable() RateTable {
	return RateTable{}
}

func buildRateTable(settings []RateSetting, asOf time.Time) RateTable {
	m := make(map[RateKey]RateSetting, len(settings))
	for _, s := range settings {
		if !s.Key.IsKnown() {
			continue
		}
		if !asOf.IsZero() && s.ValidFrom.After(asOf) {
			continue
		}
		if cur, ok := m[s.Key]; ok && cur.ValidFrom.After(s.ValidFrom) {
			continue
		}
		d := rateDefaults[s.Key]
		if s.Name == "" {
			s.Name = d.Name
		}
		if s.Unit == "" {
			s.Unit = d.Unit
		}
		if s.Category == "" {
			s.Category = d.Category
		}
		m[s.Key] = s
	}
	return RateTable{settings: m}
}

// Lookup returns the configured value and whether the key was present
func (t RateTable) Lookup(key RateKey) (decimal.Decimal, bool) {
	s, ok := t.settings[key]
	if !ok {
		return key.Default(), false
	}
	return s.Value, true
}

// Value returns the configured value or the legal default
func (t RateTable) Value(key RateKey) decimal.Decimal {
	v, _ := t.Lookup(key)
	return v
}

// Settings returns the effective rows for every known key, filling gaps with
// default rows, sorted by category then key
func (t RateTable) Settings() []RateSetting {
	out := make([]RateSetting, 0, len(rateDefaults))
	for _, key := range KnownRateKeys() {
		if s, ok := t.settings[key]; ok {
			out = append(out, s)
			continue
		}
		d := rateDefaults[key]
		out = append(out, RateSetting{
			Key:      key,
			Name:     d.Name,
			Value:    d.Value,
			Unit:     d.Unit,
			Category: d.Category,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Deductions returns only the tax credit rows
func (t RateTable) Deductions() []RateSetting {
	var out []RateSetting
	for _, s := range t.Settings() {
		if s.Category == CategoryDeduction {
			out = append(out, s)
		}
	}
	return out
}
