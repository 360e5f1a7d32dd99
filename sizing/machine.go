package sizing

import (
	"context"
	"errors"
	"math"
)

// Heat pump selection against the cold/warm period catalog tables.

// ErrEmptyCatalog is returned when a catalog table has no entries; this is
// the only structural failure the selector reports.
var ErrEmptyCatalog = errors.New("sizing: catalog table is empty")

// MachineElectricDrawKW is the placeholder electrical draw assumed per
// machine for the energy figures shown on the proposal.
const MachineElectricDrawKW = 5.0

// DailyRunHours is the assumed compressor runtime for the daily
// consumption figure.
const DailyRunHours = 8.0

// MachineCatalog exposes the two test-condition tables.
type MachineCatalog interface {
	Machines(ctx context.Context, period Period) ([]MachineSpec, error)
}

// PeriodForMonths picks the catalog table: any usage month inside the
// cold set forces the cold-period table.
func PeriodForMonths(months []Month) Period {
	for _, m := range months {
		if coldMonths[m] {
			return ColdPeriod
		}
	}
	return WarmPeriod
}

// NearestMachine returns the table entry whose capacity is closest to the
// required load. The last entry seeds the search and is only displaced by
// a strictly smaller difference, so exact ties resolve to the first
// candidate that reached the minimum.
func NearestMachine(table []MachineSpec, totalCapacityKW float64) (MachineSpec, error) {
	if len(table) == 0 {
		return MachineSpec{}, ErrEmptyCatalog
	}
	best := table[len(table)-1]
	bestDiff := math.Abs(totalCapacityKW - best.CapacityKW)
	for _, m := range table {
		diff := math.Abs(totalCapacityKW - m.CapacityKW)
		if diff < bestDiff {
			best = m
			bestDiff = diff
		}
	}
	return best, nil
}

// SelectMachines maps a required thermal load to a model plus quantity.
// The result is always a single entry; the design never splits the load
// across distinct models. A zero load still resolves to the nearest
// (smallest) model with quantity one.
func SelectMachines(ctx context.Context, catalog MachineCatalog, totalCapacityKW float64, months []Month) ([]MachineSelection, error) {
	period := PeriodForMonths(months)
	table, err := catalog.Machines(ctx, period)
	if err != nil {
		return nil, err
	}
	best, err := NearestMachine(table, totalCapacityKW)
	if err != nil {
		return nil, err
	}

	quantity := 1
	if best.CapacityKW > 0 {
		quantity = int(math.Ceil(totalCapacityKW / best.CapacityKW))
		if quantity < 1 {
			quantity = 1
		}
	}

	return []MachineSelection{{
		Model:      best.Model,
		Quantity:   quantity,
		CapacityKW: best.CapacityKW,
		FlowM3H:    best.FlowM3H,
	}}, nil
}

// RecomputeMachineEnergy refreshes the heating time and energy figures
// after a manual quantity override. Pure over its inputs: the same
// selection state always yields the same figures.
//
// When the selection has no installed capacity the heating time is left
// unset rather than dividing by zero.
func RecomputeMachineEnergy(totalCapacityKW float64, selections []MachineSelection) MachineEnergy {
	var installedKW float64
	var units int
	for _, s := range selections {
		qty := s.Quantity
		if qty < 0 {
			qty = 0
		}
		installedKW += s.CapacityKW * float64(qty)
		units += qty
	}

	energy := MachineEnergy{
		TotalElectricPowerKW: MachineElectricDrawKW * float64(units),
	}
	energy.DailyConsumptionKWH = energy.TotalElectricPowerKW * DailyRunHours

	if installedKW > 0 {
		heatingTime := totalCapacityKW / installedKW
		energy.HeatingTimeHours = &heatingTime
		energy.InitialConsumptionKWH = heatingTime * energy.TotalElectricPowerKW
	}
	return energy
}
