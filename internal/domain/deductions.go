package domain

import "fmt"

// DisabilityTier is the single selected disability credit tier
type DisabilityTier string

const (
	DisabilityNone  DisabilityTier = "none"
	DisabilityTier1 DisabilityTier = "inv1"
	DisabilityTier2 DisabilityTier = "inv2"
	DisabilityTier3 DisabilityTier = "inv3"
)

// RateKey returns the credit key for the tier; ok is false for none
func (t DisabilityTier) RateKey() (RateKey, bool) {
	switch t {
	case DisabilityTier1:
		return CreditDisability1, true
	case DisabilityTier2:
		return CreditDisability2, true
	case DisabilityTier3:
		return CreditDisability3, true
	default:
		return "", false
	}
}

// ParseDisabilityTier accepts the tier names plus "" and the numbers 0-3
func ParseDisabilityTier(s string) (DisabilityTier, error) {
	switch s {
	case "", "none", "0":
		return DisabilityNone, nil
	case "inv1", "1":
		return DisabilityTier1, nil
	case "inv2", "2":
		return DisabilityTier2, nil
	case "inv3", "3":
		return DisabilityTier3, nil
	}
	return DisabilityNone, fmt.Errorf("unknown disability tier %q (want none, inv1, inv2 or inv3)", s)
}

// UserDeductions are one person's tax credit elections
type UserDeductions struct {
	Taxpayer   bool           `yaml:"taxpayer" json:"taxpayer"`
	Children   int            `yaml:"children" json:"children"`
	Disability DisabilityTier `yaml:"disability" json:"disability"`
	ZTPP       bool           `yaml:"ztpp" json:"ztpp"`
	Student    bool           `yaml:"student" json:"student"`
}

// DefaultDeductions claims the basic taxpayer credit only
func DefaultDeductions() UserDeductions {
	return UserDeductions{Taxpayer: true, Disability: DisabilityNone}
}
