package domain

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// benefitDocument is the stored shape of a benefit. It accepts both the
// current nested "calculation" block and the older flat shape
// (calculation_type / value / is_range / min_value / max_value), which is
// migrated on decode. Encoding always writes the current shape.
type benefitDocument struct {
	Key         string               `yaml:"key" json:"key"`
	Name        string               `yaml:"name" json:"name"`
	Category    BenefitCategory      `yaml:"category,omitempty" json:"category,omitempty"`
	Calculation *calculationDocument `yaml:"calculation,omitempty" json:"calculation,omitempty"`
	Range       *rangeDocument       `yaml:"range,omitempty" json:"range,omitempty"`

	// legacy flat fields
	CalculationType string           `yaml:"calculation_type,omitempty" json:"calculation_type,omitempty"`
	Value           *decimal.Decimal `yaml:"value,omitempty" json:"value,omitempty"`
	IsRange         bool             `yaml:"is_range,omitempty" json:"is_range,omitempty"`
	MinValue        *decimal.Decimal `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue        *decimal.Decimal `yaml:"max_value,omitempty" json:"max_value,omitempty"`
}

type calculationDocument struct {
	Type         CalculationKind  `yaml:"type" json:"type"`
	Value        *decimal.Decimal `yaml:"value,omitempty" json:"value,omitempty"`
	Base         PercentageBase   `yaml:"base,omitempty" json:"base,omitempty"`
	BaseAmount   *decimal.Decimal `yaml:"base_amount,omitempty" json:"base_amount,omitempty"`
	Unit         BenefitUnit      `yaml:"unit,omitempty" json:"unit,omitempty"`
	UnitsSource  UnitsSource      `yaml:"units_source,omitempty" json:"units_source,omitempty"`
	UnitsValue   *decimal.Decimal `yaml:"units_value,omitempty" json:"units_value,omitempty"`
	FloorPerUnit *decimal.Decimal `yaml:"floor_per_unit,omitempty" json:"floor_per_unit,omitempty"`
	CapAmount    *decimal.Decimal `yaml:"cap_amount,omitempty" json:"cap_amount,omitempty"`
	Rounding     RoundingMode     `yaml:"rounding,omitempty" json:"rounding,omitempty"`
}

type rangeDocument struct {
	IsRange  bool             `yaml:"is_range" json:"is_range"`
	Min      *decimal.Decimal `yaml:"min,omitempty" json:"min,omitempty"`
	Max      *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Expected *decimal.Decimal `yaml:"expected,omitempty" json:"expected,omitempty"`
}

// legacyHourlyRate is the v1 kind that became rate/hour/working_hours_fund
const legacyHourlyRate = "hourly_rate"

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func nonZero(d decimal.Decimal) *decimal.Decimal {
	if d.IsZero() {
		return nil
	}
	return &d
}

func (doc benefitDocument) toBenefit() (Benefit, error) {
	b := Benefit{
		Key:      doc.Key,
		Name:     doc.Name,
		Category: doc.Category,
		Rounding: RoundNearest,
	}
	if b.Category == "" {
		b.Category = BenefitOther
	}

	if doc.Calculation == nil {
		return doc.migrateLegacy(b)
	}

	c := doc.Calculation
	switch c.Type {
	case KindFixedAmount:
		b.Calculation = FixedAmount{Value: orZero(c.Value)}
	case KindPercentage:
		base := c.Base
		if base == "" {
			base = BaseSalary
		}
		b.Calculation = Percentage{
			Value:        orZero(c.Value),
			Base:         base,
			CustomBase:   orZero(c.BaseAmount),
			Unit:         c.Unit,
			UnitsSource:  c.UnitsSource,
			FloorPerUnit: orZero(c.FloorPerUnit),
		}
	case KindRate:
		unit := c.Unit
		if unit == "" {
			unit = PerHour
		}
		b.Calculation = Rate{
			Value:       orZero(c.Value),
			Unit:        unit,
			UnitsSource: c.UnitsSource,
			UnitsValue:  orZero(c.UnitsValue),
		}
	default:
		return Benefit{}, fmt.Errorf("benefit %q: unknown calculation type %q", doc.Key, c.Type)
	}
	b.CapAmount = orZero(c.CapAmount)
	if c.Rounding != "" {
		b.Rounding = c.Rounding
	}
	if doc.Range != nil {
		b.Range = &Range{
			IsRange:  doc.Range.IsRange,
			Min:      doc.Range.Min,
			Max:      doc.Range.Max,
			Expected: doc.Range.Expected,
		}
	}
	return b, nil
}

func (doc benefitDocument) migrateLegacy(b Benefit) (Benefit, error) {
	value := orZero(doc.Value)
	switch doc.CalculationType {
	case string(KindFixedAmount), "":
		b.Calculation = FixedAmount{Value: value}
	case string(KindPercentage):
		b.Calculation = Percentage{Value: value, Base: BaseSalary}
	case legacyHourlyRate:
		b.Calculation = Rate{Value: value, Unit: PerHour, UnitsSource: UnitsWorkingHoursFund}
	default:
		return Benefit{}, fmt.Errorf("benefit %q: unknown legacy calculation type %q", doc.Key, doc.CalculationType)
	}
	if doc.IsRange {
		b.Range = &Range{IsRange: true, Min: doc.MinValue, Max: doc.MaxValue}
	}
	return b, nil
}

func documentFromBenefit(b Benefit) benefitDocument {
	doc := benefitDocument{Key: b.Key, Name: b.Name, Category: b.Category}
	c := &calculationDocument{
		CapAmount: nonZero(b.CapAmount),
		Rounding:  b.Rounding,
	}
	switch calc := b.Calculation.(type) {
	case Percentage:
		c.Type = KindPercentage
		c.Value = Dec(calc.Value)
		c.Base = calc.Base
		c.BaseAmount = nonZero(calc.CustomBase)
		c.Unit = calc.Unit
		c.UnitsSource = calc.UnitsSource
		c.FloorPerUnit = nonZero(calc.FloorPerUnit)
	case Rate:
		c.Type = KindRate
		c.Value = Dec(calc.Value)
		c.Unit = calc.Unit
		c.UnitsSource = calc.UnitsSource
		c.UnitsValue = nonZero(calc.UnitsValue)
	case FixedAmount:
		c.Type = KindFixedAmount
		c.Value = Dec(calc.Value)
	default:
		c.Type = KindFixedAmount
		c.Value = Dec(decimal.Zero)
	}
	doc.Calculation = c
	if b.Range != nil {
		doc.Range = &rangeDocument{
			IsRange:  b.Range.IsRange,
			Min:      b.Range.Min,
			Max:      b.Range.Max,
			Expected: b.Range.Expected,
		}
	}
	return doc
}

// UnmarshalYAML implements yaml.Unmarshaler
func (b *Benefit) UnmarshalYAML(node *yaml.Node) error {
	var doc benefitDocument
	if err := node.Decode(&doc); err != nil {
		return err
	}
	decoded, err := doc.toBenefit()
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (b Benefit) MarshalYAML() (interface{}, error) {
	return documentFromBenefit(b), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Benefit) UnmarshalJSON(data []byte) error {
	var doc benefitDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := doc.toBenefit()
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// MarshalJSON implements json.Marshaler
func (b Benefit) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentFromBenefit(b))
}
