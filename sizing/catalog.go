package sizing

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Built-in catalogs. These are the factory tables shipped with the
// product; the repository layer serves DB-backed copies and falls back to
// these seeds when the tables are empty.

// defaultColdPeriodMachines is the heat pump table for cold-period usage
// (26 C test condition).
var defaultColdPeriodMachines = []MachineSpec{
	{Model: "AS-9", CapacityKW: 10.4, FlowM3H: 4.5},
	{Model: "AS-14", CapacityKW: 15.6, FlowM3H: 6.0},
	{Model: "AS-21", CapacityKW: 23.4, FlowM3H: 8.5},
	{Model: "AS-30", CapacityKW: 33.5, FlowM3H: 12.0},
	{Model: "AS-42", CapacityKW: 46.8, FlowM3H: 16.0},
	{Model: "AS-60", CapacityKW: 66.6, FlowM3H: 22.0},
}

// defaultWarmPeriodMachines is the heat pump table for warm-period usage
// (15 C test condition).
var defaultWarmPeriodMachines = []MachineSpec{
	{Model: "AS-9", CapacityKW: 7.5, FlowM3H: 4.5},
	{Model: "AS-14", CapacityKW: 11.2, FlowM3H: 6.0},
	{Model: "AS-21", CapacityKW: 16.8, FlowM3H: 8.5},
	{Model: "AS-30", CapacityKW: 24.1, FlowM3H: 12.0},
	{Model: "AS-42", CapacityKW: 33.6, FlowM3H: 16.0},
	{Model: "AS-60", CapacityKW: 47.9, FlowM3H: 22.0},
}

// defaultGasHeaters covers the 15,000 to 50,000 kcal/h range.
var defaultGasHeaters = []GasHeaterSpec{
	{Model: "GN-15", PowerKcalH: 15000},
	{Model: "GN-20", PowerKcalH: 20000},
	{Model: "GN-25", PowerKcalH: 25000},
	{Model: "GN-30", PowerKcalH: 30000},
	{Model: "GN-35", PowerKcalH: 35000},
	{Model: "GN-40", PowerKcalH: 40000},
	{Model: "GN-50", PowerKcalH: 50000},
}

var defaultSolarCollectors = []SolarCollectorSpec{
	{Model: "SC-100", AreaM2: 1.0},
	{Model: "SC-150", AreaM2: 1.5},
	{Model: "SC-200", AreaM2: 2.0},
	{Model: "SC-250", AreaM2: 2.5},
	{Model: "SC-300", AreaM2: 3.0},
}

// StaticCatalog serves the built-in tables. It implements
// MachineCatalog, GasHeaterCatalog and SolarCollectorCatalog and is the
// zero-dependency catalog used by tests and as a repository fallback.
type StaticCatalog struct{}

func (StaticCatalog) Machines(_ context.Context, period Period) ([]MachineSpec, error) {
	if period == ColdPeriod {
		return defaultColdPeriodMachines, nil
	}
	return defaultWarmPeriodMachines, nil
}

func (StaticCatalog) GasHeaters(_ context.Context) ([]GasHeaterSpec, error) {
	return defaultGasHeaters, nil
}

func (StaticCatalog) SolarCollectors(_ context.Context) ([]SolarCollectorSpec, error) {
	return defaultSolarCollectors, nil
}

// DefaultMachines returns a copy of the built-in table for seeding.
func DefaultMachines(period Period) []MachineSpec {
	var src []MachineSpec
	if period == ColdPeriod {
		src = defaultColdPeriodMachines
	} else {
		src = defaultWarmPeriodMachines
	}
	out := make([]MachineSpec, len(src))
	copy(out, src)
	return out
}

// DefaultGasHeaters returns a copy of the built-in table for seeding.
func DefaultGasHeaters() []GasHeaterSpec {
	out := make([]GasHeaterSpec, len(defaultGasHeaters))
	copy(out, defaultGasHeaters)
	return out
}

// DefaultSolarCollectors returns a copy of the built-in table for seeding.
func DefaultSolarCollectors() []SolarCollectorSpec {
	out := make([]SolarCollectorSpec, len(defaultSolarCollectors))
	copy(out, defaultSolarCollectors)
	return out
}

var accentFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeCityName lowercases and strips accents so "São Paulo" and
// "sao paulo" hit the same table entry.
func normalizeCityName(name string) string {
	folded, _, err := transform.String(accentFold, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// NormalizeCityName is the exported form used by the repositories for
// accent-insensitive lookups.
func NormalizeCityName(name string) string {
	return normalizeCityName(name)
}
