package sizing

import (
	"context"
	"math"
)

// Gas heater sizing.

// DefaultHeaterEfficiency is the combustion efficiency assumed for both
// gas heaters and the solar demand calculation.
const DefaultHeaterEfficiency = 0.85

// GasHeaterCatalog is the read-only source of gas heater models.
type GasHeaterCatalog interface {
	GasHeaters(ctx context.Context) ([]GasHeaterSpec, error)
}

// RequiredGasPower converts the simultaneous flow into thermal power in
// kcal/h: one liter of water per hour raised by one degree is one kcal/h,
// divided by the heater efficiency. A consumption temperature below the
// ambient minimum clamps to zero demand. A non-positive efficiency falls
// back to the default instead of dividing by zero.
func RequiredGasPower(maxFlowLpm, consumptionTemp, minAmbientTemp, efficiency float64) float64 {
	if efficiency <= 0 {
		efficiency = DefaultHeaterEfficiency
	}
	deltaT := consumptionTemp - minAmbientTemp
	if deltaT < 0 {
		deltaT = 0
	}
	return FlowLpmToLph(maxFlowLpm) * deltaT / efficiency
}

// cityMinTemps is the fixed city to minimum-ambient-temperature table used
// by the residential sizing. Keys are normalized with normalizeCityName.
var cityMinTemps = map[string]float64{
	"sao paulo":      10,
	"campinas":       11,
	"sorocaba":       10,
	"curitiba":       8,
	"porto alegre":   9,
	"florianopolis":  12,
	"belo horizonte": 13,
	"rio de janeiro": 16,
	"vitoria":        18,
	"brasilia":       12,
	"goiania":        14,
	"salvador":       20,
	"recife":         21,
	"fortaleza":      22,
}

// MinAmbientTempForCity looks up the minimum ambient temperature for the
// residential formulas. Unknown cities fall back to the default rather
// than failing the calculation.
func MinAmbientTempForCity(city string) float64 {
	if t, ok := cityMinTemps[normalizeCityName(city)]; ok {
		return t
	}
	return DefaultMinAmbientTemp
}

// NearestGasHeater applies the same nearest-by-absolute-difference rule as
// the machine selector, seeded with the last catalog entry.
func NearestGasHeater(table []GasHeaterSpec, powerKcalH float64) (GasHeaterSpec, error) {
	if len(table) == 0 {
		return GasHeaterSpec{}, ErrEmptyCatalog
	}
	best := table[len(table)-1]
	bestDiff := math.Abs(powerKcalH - best.PowerKcalH)
	for _, g := range table {
		diff := math.Abs(powerKcalH - g.PowerKcalH)
		if diff < bestDiff {
			best = g
			bestDiff = diff
		}
	}
	return best, nil
}

// PreselectGasHeater fills the selection with the catalog model nearest to
// the required power, but only on first computation: an existing catalog
// choice or free-typed custom model is never overridden. The calculated
// power is always refreshed on the returned selection.
func PreselectGasHeater(ctx context.Context, catalog GasHeaterCatalog, powerKcalH float64, current *SelectedGasHeater) (*SelectedGasHeater, error) {
	sel := &SelectedGasHeater{Quantity: 1}
	if current != nil {
		copied := *current
		sel = &copied
		if sel.Quantity < 1 {
			sel.Quantity = 1
		}
	}
	sel.CalculatedPowerKcalH = powerKcalH

	if sel.Bound() {
		return sel, nil
	}

	table, err := catalog.GasHeaters(ctx)
	if err != nil {
		return nil, err
	}
	best, err := NearestGasHeater(table, powerKcalH)
	if err != nil {
		return nil, err
	}
	sel.Model = best.Model
	return sel, nil
}
