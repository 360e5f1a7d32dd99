package sizing

// Pool thermal load calculation.
//
// The heating power needed for each body of water depends on its geometry
// (surface loss for shallow areas, stored volume for deep ones), the gap
// between desired and minimum ambient temperature, and a set of
// multiplicative correction factors for wind, high target temperature,
// suspended structures and enclosed environments.

const (
	shallowCoefficient = 0.06   // pseudo-depth applied to surface-loss areas
	waterDensity       = 1000.0 // kg/m3
	waterSpecificHeat  = 4.18   // kJ/kg C
	secondsPerHour     = 3600.0

	heatingHoursDaily      = 65.0
	heatingHoursOccasional = 24.0
)

// HeatingHours returns the time budget, in hours, over which the pool must
// reach temperature for the given use frequency.
func HeatingHours(useFrequency string) float64 {
	if useFrequency == UseFrequencyDaily {
		return heatingHoursDaily
	}
	return heatingHoursOccasional
}

// WindFactor approximates convective loss over an open water surface.
// Step table, no interpolation.
func WindFactor(windSpeedKmh float64) float64 {
	switch {
	case windSpeedKmh <= 18:
		return 1.15
	case windSpeedKmh <= 35:
		return 1.25
	default:
		return 1.80
	}
}

// TempFactor penalizes high target temperatures, but only for daily-use
// heating budgets (hours above 55).
func TempFactor(desiredTemp, heatingHours float64) float64 {
	if desiredTemp > 31 && heatingHours > 55 {
		return 1 + (desiredTemp-31)*0.15
	}
	return 1
}

// shallowCapacityKW is the surface-based formula: length and width in
// meters, deltaT in C, already-resolved factors, result in kW.
func shallowCapacityKW(length, width, deltaT, factors, heatingHours float64) float64 {
	return length * width * shallowCoefficient * deltaT * factors / heatingHours
}

// deepCapacityKW is the volumetric formula: energy to raise the full
// volume by deltaT spread over the heating budget.
func deepCapacityKW(length, width, depth, deltaT, factors, heatingHours float64) float64 {
	energy := length * width * depth * waterDensity * deltaT * waterSpecificHeat // kJ
	return energy * factors / (secondsPerHour * heatingHours)
}

// ComputeThermalLoad sizes the heating power for a pool.
//
// Areas with any zero dimension contribute nothing (partial forms still
// produce an estimate). Accessories always use the shallow formula with
// their own dimensions as the surface. The enclosed factor is applied
// once, over the summed total. A desired temperature below the climate
// minimum is clamped to zero demand instead of producing a negative load.
func ComputeThermalLoad(areas []WaterArea, accessories Accessories, usage UsageParameters, climate ClimateConditions) PoolLoad {
	hours := HeatingHours(usage.UseFrequency)

	deltaT := usage.DesiredTemp - climate.MinTemp
	if deltaT < 0 {
		deltaT = 0
	}

	factors := WindFactor(climate.WindSpeed) * TempFactor(usage.DesiredTemp, hours)
	if usage.IsSuspended {
		factors *= 1.5
	}

	var total float64
	for _, a := range areas {
		if a.Length <= 0 || a.Width <= 0 || a.Depth <= 0 {
			continue
		}
		if a.IsShallow() {
			total += shallowCapacityKW(a.Length, a.Width, deltaT, factors, hours)
		} else {
			total += deepCapacityKW(a.Length, a.Width, a.Depth, deltaT, factors, hours)
		}
	}

	for _, w := range accessories.Waterfalls {
		if w.Width <= 0 || w.Height <= 0 {
			continue
		}
		total += shallowCapacityKW(w.Width, w.Height, deltaT, factors, hours)
	}
	for _, e := range accessories.InfinityEdges {
		if e.Length <= 0 || e.Height <= 0 {
			continue
		}
		total += shallowCapacityKW(e.Length, e.Height, deltaT, factors, hours)
	}

	if usage.IsEnclosed {
		total *= 1.15
	}

	return PoolLoad{TotalCapacityKW: total, HeatingHours: hours}
}
