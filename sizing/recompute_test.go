package sizing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryClimate is the in-memory climate repository used across the
// engine tests.
type memoryClimate map[int]CityClimate

func (m memoryClimate) CityClimate(_ context.Context, cityID int) (CityClimate, error) {
	city, ok := m[cityID]
	if !ok {
		return CityClimate{}, errors.New("city not found")
	}
	return city, nil
}

func testClimate() memoryClimate {
	return memoryClimate{
		1: {
			Name: "Campinas",
			MonthlyData: []MonthlyClimate{
				{Month: Janeiro, Temperature: 23, SolarRadiation: 5.6, WindSpeed: 14},
				{Month: Fevereiro, Temperature: 23, SolarRadiation: 5.5, WindSpeed: 13},
				{Month: Junho, Temperature: 12, SolarRadiation: 4.1, WindSpeed: 22},
				{Month: Julho, Temperature: 11, SolarRadiation: 4.3, WindSpeed: 24},
				{Month: Dezembro, Temperature: 22, SolarRadiation: 5.7, WindSpeed: 15},
			},
		},
	}
}

func TestRecomputePool(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(testClimate())

	draft := ProposalDraft{
		Segment: SegmentPool,
		CityID:  1,
		Areas:   []WaterArea{{Length: 10, Width: 4, Depth: 1.5}},
		Usage: UsageParameters{
			DesiredTemp:    28,
			UseFrequency:   UseFrequencyOccasional,
			SelectedMonths: []Month{Janeiro, Fevereiro, Dezembro},
		},
	}

	t.Run("end to end warm period", func(t *testing.T) {
		result, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		require.NotNil(t, result.Pool)
		assert.Nil(t, result.Residential)

		// Min temp 22 over the warm months, wind max 15 -> factor 1.15.
		want := 10 * 4 * 1.5 * 1000 * (28 - 22) * 1.15 * 4.18 / (3600 * 24)
		assert.InDelta(t, want, result.Pool.ThermalLoadKW, 1e-9)
		assert.Equal(t, 24.0, result.Pool.HeatingHours)
		assert.Equal(t, WarmPeriod, result.Pool.Period)
		require.Len(t, result.Pool.SuggestedMachines, 1)
		// ~20 kW against the warm table lands on AS-21 (16.8 kW), 2 units.
		assert.Equal(t, "AS-21", result.Pool.SuggestedMachines[0].Model)
		assert.Equal(t, 2, result.Pool.SuggestedMachines[0].Quantity)
	})

	t.Run("cold month usage switches catalog table", func(t *testing.T) {
		cold := draft
		cold.Usage.SelectedMonths = []Month{Junho, Julho}
		result, err := engine.Recompute(ctx, cold)
		require.NoError(t, err)
		assert.Equal(t, ColdPeriod, result.Pool.Period)
	})

	t.Run("unknown city degrades to defaults instead of failing", func(t *testing.T) {
		missing := draft
		missing.CityID = 99
		result, err := engine.Recompute(ctx, missing)
		require.NoError(t, err)
		// Defaults: min temp 10, wind 20 km/h -> factor 1.25.
		want := 10 * 4 * 1.5 * 1000 * (28 - 10) * 1.25 * 4.18 / (3600 * 24)
		assert.InDelta(t, want, result.Pool.ThermalLoadKW, 1e-9)
	})

	t.Run("manual override preserved and energy recomputed", func(t *testing.T) {
		overridden := draft
		overridden.Machines = []MachineSelection{{Model: "AS-21", Quantity: 3, CapacityKW: 16.8, FlowM3H: 8.5}}
		result, err := engine.Recompute(ctx, overridden)
		require.NoError(t, err)
		require.Len(t, result.Pool.SuggestedMachines, 1)
		assert.Equal(t, 3, result.Pool.SuggestedMachines[0].Quantity)
		require.NotNil(t, result.Pool.Energy.HeatingTimeHours)
		assert.InDelta(t, result.Pool.ThermalLoadKW/(16.8*3), *result.Pool.Energy.HeatingTimeHours, 1e-9)
		assert.Equal(t, 15.0, result.Pool.Energy.TotalElectricPowerKW)
		assert.Equal(t, 120.0, result.Pool.Energy.DailyConsumptionKWH)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		second, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, first.Pool.ThermalLoadKW, second.Pool.ThermalLoadKW)
		assert.Equal(t, first.Pool.SuggestedMachines, second.Pool.SuggestedMachines)
	})
}

func TestRecomputeResidential(t *testing.T) {
	ctx := context.Background()
	engine := NewEngine(testClimate())

	draft := ProposalDraft{
		Segment: SegmentResidential,
		City:    "São Paulo",
		Fixtures: []Fixture{
			{Name: "chuveiro 1", FlowLpm: 12, Quantity: 1},
			{Name: "cozinha", FlowLpm: 8},
		},
		ConsumptionTemp: 40,
		GasEnabled:      true,
		SolarEnabled:    true,
	}

	t.Run("end to end gas and solar", func(t *testing.T) {
		result, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		require.NotNil(t, result.Residential)
		assert.Nil(t, result.Pool)

		res := result.Residential
		assert.Equal(t, 20.0, res.MaxSimultaneousFlowLpm)
		assert.Equal(t, 1200.0, res.MaxSimultaneousFlowLph)

		require.NotNil(t, res.GasHeater)
		assert.InDelta(t, 42352.94, res.GasHeater.CalculatedPowerKcalH, 0.01)
		assert.Equal(t, "GN-40", res.GasHeater.Model)

		require.NotNil(t, res.SolarCollector)
		assert.InDelta(t, 49.41, res.SolarCollector.CalculatedRequiredAreaM2, 0.01)
		assert.Equal(t, "SC-250", res.SolarCollector.Model)
		assert.Equal(t, 20, res.SolarCollector.Quantity)
	})

	t.Run("disabled systems stay nil", func(t *testing.T) {
		gasOnly := draft
		gasOnly.SolarEnabled = false
		result, err := engine.Recompute(ctx, gasOnly)
		require.NoError(t, err)
		assert.NotNil(t, result.Residential.GasHeater)
		assert.Nil(t, result.Residential.SolarCollector)
	})

	t.Run("user choices survive recomputation", func(t *testing.T) {
		chosen := draft
		chosen.GasHeater = &SelectedGasHeater{CustomModel: "Rheem importado"}
		chosen.SolarCollector = &SelectedSolarCollector{Model: "SC-300", Quantity: 1}
		result, err := engine.Recompute(ctx, chosen)
		require.NoError(t, err)
		assert.Equal(t, "Rheem importado", result.Residential.GasHeater.CustomModel)
		assert.Empty(t, result.Residential.GasHeater.Model)
		assert.Equal(t, "SC-300", result.Residential.SolarCollector.Model)
		assert.Equal(t, 17, result.Residential.SolarCollector.Quantity) // ceil(49.41 / 3.0)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		second, err := engine.Recompute(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, first.Residential, second.Residential)
	})
}
