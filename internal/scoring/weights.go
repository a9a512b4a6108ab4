package scoring

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WeightSet defines the relative importance of each indicator.
// Weights are exact decimals and must sum to exactly 1.0.
type WeightSet struct {
	RenewablePotential decimal.Decimal
	GridAccess         decimal.Decimal
	Regulatory         decimal.Decimal
	Implementation     decimal.Decimal
}

var defaultWeights = WeightSet{
	RenewablePotential: decimal.RequireFromString("0.35"),
	GridAccess:         decimal.RequireFromString("0.25"),
	Regulatory:         decimal.RequireFromString("0.25"),
	Implementation:     decimal.RequireFromString("0.15"),
}

// DefaultWeights returns the CERS weight distribution.
func DefaultWeights() WeightSet {
	return defaultWeights
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() decimal.Decimal {
	return w.RenewablePotential.Add(w.GridAccess).Add(w.Regulatory).Add(w.Implementation)
}

// Validate checks that weights sum to exactly 1.0 and none are negative.
func (w WeightSet) Validate() error {
	if !w.Sum().Equal(decimal.NewFromInt(1)) {
		return fmt.Errorf("weights sum to %s, must sum to 1.0", w.Sum())
	}
	for _, v := range w.asList() {
		if v.IsNegative() {
			return fmt.Errorf("negative weight: %s", v)
		}
	}
	return nil
}

// Of returns the weight of one indicator.
func (w WeightSet) Of(ind Indicator) decimal.Decimal {
	switch ind {
	case IndicatorP:
		return w.RenewablePotential
	case IndicatorG:
		return w.GridAccess
	case IndicatorR:
		return w.Regulatory
	case IndicatorH:
		return w.Implementation
	default:
		return decimal.Zero
	}
}

func (w WeightSet) asList() []decimal.Decimal {
	return []decimal.Decimal{w.RenewablePotential, w.GridAccess, w.Regulatory, w.Implementation}
}
