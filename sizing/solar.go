package sizing

import (
	"context"
	"math"
)

// Solar collector sizing.

const (
	// SolarCoverageFraction is the share of the thermal demand the solar
	// system is sized to cover; the remainder comes from backup heating.
	SolarCoverageFraction = 0.7

	// DefaultCollectorYieldKcalHM2 is the average production assumed per
	// square meter of collector.
	DefaultCollectorYieldKcalHM2 = 600.0

	// DefaultCollectorAreaM2 is the preferred catalog area when no
	// collector has been chosen yet.
	DefaultCollectorAreaM2 = 2.5
)

// SolarCollectorCatalog is the read-only source of collector models.
type SolarCollectorCatalog interface {
	SolarCollectors(ctx context.Context) ([]SolarCollectorSpec, error)
}

// RequiredCollectorArea computes the collector area, in m2, needed to
// cover 70% of the same thermal demand the gas sizing uses. A
// non-positive yield falls back to the default.
func RequiredCollectorArea(maxFlowLpm, consumptionTemp, minAmbientTemp, efficiency, yieldKcalHM2 float64) float64 {
	if yieldKcalHM2 <= 0 {
		yieldKcalHM2 = DefaultCollectorYieldKcalHM2
	}
	power := RequiredGasPower(maxFlowLpm, consumptionTemp, minAmbientTemp, efficiency)
	return power * SolarCoverageFraction / yieldKcalHM2
}

// defaultCollector picks the catalog entry with the preferred 2.5 m2
// area, or the second entry when that exact area is absent.
func defaultCollector(table []SolarCollectorSpec) (SolarCollectorSpec, error) {
	if len(table) == 0 {
		return SolarCollectorSpec{}, ErrEmptyCatalog
	}
	for _, s := range table {
		if s.AreaM2 == DefaultCollectorAreaM2 {
			return s, nil
		}
	}
	if len(table) > 1 {
		return table[1], nil
	}
	return table[0], nil
}

// collectorQuantity is ceil(requiredArea / unitArea), never below one.
func collectorQuantity(requiredAreaM2, unitAreaM2 float64) int {
	if unitAreaM2 <= 0 {
		return 1
	}
	qty := int(math.Ceil(requiredAreaM2 / unitAreaM2))
	if qty < 1 {
		qty = 1
	}
	return qty
}

// PreselectSolarCollector applies the selection rules: with no collector
// chosen yet, default to the preferred model and size the quantity; with
// a catalog model already chosen, refresh only the quantity; with a
// custom-typed model, keep the user's entry untouched apart from the
// calculated area. Also used when the selected model changes while a
// required area is already known, so the quantity follows the new model.
func PreselectSolarCollector(ctx context.Context, catalog SolarCollectorCatalog, requiredAreaM2 float64, current *SelectedSolarCollector) (*SelectedSolarCollector, error) {
	sel := &SelectedSolarCollector{Quantity: 1}
	if current != nil {
		copied := *current
		sel = &copied
		if sel.Quantity < 1 {
			sel.Quantity = 1
		}
	}
	sel.CalculatedRequiredAreaM2 = requiredAreaM2

	if sel.CustomModel != "" {
		// Free text: no catalog area to size against.
		return sel, nil
	}

	table, err := catalog.SolarCollectors(ctx)
	if err != nil {
		return nil, err
	}

	if sel.Model == "" {
		def, err := defaultCollector(table)
		if err != nil {
			return nil, err
		}
		sel.Model = def.Model
		sel.Quantity = collectorQuantity(requiredAreaM2, def.AreaM2)
		return sel, nil
	}

	// Catalog model already chosen: only the quantity is refreshed.
	for _, s := range table {
		if s.Model == sel.Model {
			sel.Quantity = collectorQuantity(requiredAreaM2, s.AreaM2)
			return sel, nil
		}
	}
	// Model no longer in the catalog: treat like a custom entry.
	return sel, nil
}
