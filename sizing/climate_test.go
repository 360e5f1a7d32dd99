package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClimateForMonths(t *testing.T) {
	data := []MonthlyClimate{
		{Month: Janeiro, Temperature: 22, WindSpeed: 12},
		{Month: Maio, Temperature: 14, WindSpeed: 25},
		{Month: Julho, Temperature: 9, WindSpeed: 38},
		{Month: Dezembro, Temperature: 21, WindSpeed: 15},
	}

	t.Run("minimum temperature and maximum wind over the subset", func(t *testing.T) {
		cond := ClimateForMonths(data, []Month{Maio, Julho})
		assert.Equal(t, 9.0, cond.MinTemp)
		assert.Equal(t, 38.0, cond.WindSpeed)
	})

	t.Run("subset excludes other months", func(t *testing.T) {
		cond := ClimateForMonths(data, []Month{Janeiro, Dezembro})
		assert.Equal(t, 21.0, cond.MinTemp)
		assert.Equal(t, 15.0, cond.WindSpeed)
	})

	t.Run("empty selection means the whole year", func(t *testing.T) {
		cond := ClimateForMonths(data, nil)
		assert.Equal(t, 9.0, cond.MinTemp)
		assert.Equal(t, 38.0, cond.WindSpeed)
	})

	t.Run("no data falls back to defaults", func(t *testing.T) {
		cond := ClimateForMonths(nil, []Month{Janeiro})
		assert.Equal(t, DefaultMinAmbientTemp, cond.MinTemp)
		assert.Equal(t, DefaultWindSpeedKmh, cond.WindSpeed)
	})

	t.Run("selected months missing from data fall back to defaults", func(t *testing.T) {
		cond := ClimateForMonths(data, []Month{Abril})
		assert.Equal(t, DefaultMinAmbientTemp, cond.MinTemp)
		assert.Equal(t, DefaultWindSpeedKmh, cond.WindSpeed)
	})
}

func TestNormalizeCityName(t *testing.T) {
	assert.Equal(t, "sao paulo", NormalizeCityName("São Paulo"))
	assert.Equal(t, "florianopolis", NormalizeCityName("  Florianópolis "))
	assert.Equal(t, "curitiba", NormalizeCityName("CURITIBA"))
}
