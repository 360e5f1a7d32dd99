package sizing

import "context"

// DefaultWindSpeedKmh is assumed when a city has no wind data for the
// selected months.
const DefaultWindSpeedKmh = 20.0

// DefaultMinAmbientTemp is the fallback minimum ambient temperature when
// no climate data exists for a city.
const DefaultMinAmbientTemp = 10.0

// ClimateRepository is the read-only source of city climate data. The
// production implementation is backed by the cities tables; tests use an
// in-memory one.
type ClimateRepository interface {
	CityClimate(ctx context.Context, cityID int) (CityClimate, error)
}

// ClimateForMonths reduces a city's monthly data to the conditions that
// matter for pool sizing: the minimum temperature and maximum wind speed
// across the selected months. An empty selection means the whole year.
// Missing data falls back to the package defaults instead of failing.
func ClimateForMonths(data []MonthlyClimate, months []Month) ClimateConditions {
	selected := make(map[Month]bool, len(months))
	for _, m := range months {
		selected[m] = true
	}

	cond := ClimateConditions{MinTemp: DefaultMinAmbientTemp, WindSpeed: DefaultWindSpeedKmh}
	found := false
	for _, mc := range data {
		if len(selected) > 0 && !selected[mc.Month] {
			continue
		}
		if !found {
			cond.MinTemp = mc.Temperature
			cond.WindSpeed = mc.WindSpeed
			found = true
			continue
		}
		if mc.Temperature < cond.MinTemp {
			cond.MinTemp = mc.Temperature
		}
		if mc.WindSpeed > cond.WindSpeed {
			cond.WindSpeed = mc.WindSpeed
		}
	}
	return cond
}
