package sizing

import (
	"context"
	"fmt"
)

// Engine bundles the read-only catalogs the calculators depend on. All of
// its methods are pure over the draft snapshot: the same draft and catalog
// state always produce the same result, and nothing is mutated.
type Engine struct {
	Climate    ClimateRepository
	Machines   MachineCatalog
	GasHeaters GasHeaterCatalog
	Collectors SolarCollectorCatalog
}

// NewEngine wires an engine over the given climate repository, serving
// equipment from the built-in catalogs.
func NewEngine(climate ClimateRepository) *Engine {
	static := StaticCatalog{}
	return &Engine{
		Climate:    climate,
		Machines:   static,
		GasHeaters: static,
		Collectors: static,
	}
}

// Recompute runs the full calculation for whichever segment the draft
// describes. The caller invokes it after every relevant edit; calling it
// twice with the same draft yields identical output.
func (e *Engine) Recompute(ctx context.Context, draft ProposalDraft) (SizingResult, error) {
	switch draft.Segment {
	case SegmentResidential:
		res, err := e.recomputeResidential(ctx, draft)
		if err != nil {
			return SizingResult{}, err
		}
		return SizingResult{Residential: res}, nil
	default:
		// Pool is the historical default segment.
		res, err := e.recomputePool(ctx, draft)
		if err != nil {
			return SizingResult{}, err
		}
		return SizingResult{Pool: res}, nil
	}
}

func (e *Engine) recomputePool(ctx context.Context, draft ProposalDraft) (*PoolResult, error) {
	climate := ClimateConditions{MinTemp: DefaultMinAmbientTemp, WindSpeed: DefaultWindSpeedKmh}
	if e.Climate != nil && draft.CityID != 0 {
		city, err := e.Climate.CityClimate(ctx, draft.CityID)
		if err == nil {
			climate = ClimateForMonths(city.MonthlyData, draft.Usage.SelectedMonths)
		}
		// A missing city never fails the calculation; defaults apply.
	}

	load := ComputeThermalLoad(draft.Areas, draft.Accessories, draft.Usage, climate)

	selections := draft.Machines
	if len(selections) == 0 {
		var err error
		selections, err = SelectMachines(ctx, e.Machines, load.TotalCapacityKW, draft.Usage.SelectedMonths)
		if err != nil {
			return nil, fmt.Errorf("machine selection: %w", err)
		}
	}

	return &PoolResult{
		ThermalLoadKW:     load.TotalCapacityKW,
		HeatingHours:      load.HeatingHours,
		Period:            PeriodForMonths(draft.Usage.SelectedMonths),
		SuggestedMachines: selections,
		Energy:            RecomputeMachineEnergy(load.TotalCapacityKW, selections),
	}, nil
}

func (e *Engine) recomputeResidential(ctx context.Context, draft ProposalDraft) (*ResidentialResult, error) {
	flowLpm := MaxSimultaneousFlow(draft.Fixtures)
	res := &ResidentialResult{
		MaxSimultaneousFlowLpm: flowLpm,
		MaxSimultaneousFlowLph: FlowLpmToLph(flowLpm),
	}

	minAmbient := MinAmbientTempForCity(draft.City)

	if draft.GasEnabled {
		power := RequiredGasPower(flowLpm, draft.ConsumptionTemp, minAmbient, DefaultHeaterEfficiency)
		sel, err := PreselectGasHeater(ctx, e.GasHeaters, power, draft.GasHeater)
		if err != nil {
			return nil, fmt.Errorf("gas heater selection: %w", err)
		}
		res.GasHeater = sel
	}

	if draft.SolarEnabled {
		area := RequiredCollectorArea(flowLpm, draft.ConsumptionTemp, minAmbient, DefaultHeaterEfficiency, DefaultCollectorYieldKcalHM2)
		sel, err := PreselectSolarCollector(ctx, e.Collectors, area, draft.SolarCollector)
		if err != nil {
			return nil, fmt.Errorf("solar collector selection: %w", err)
		}
		res.SolarCollector = sel
	}

	return res, nil
}
