package sizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodForMonths(t *testing.T) {
	assert.Equal(t, WarmPeriod, PeriodForMonths(nil))
	assert.Equal(t, WarmPeriod, PeriodForMonths([]Month{Janeiro, Dezembro}))
	assert.Equal(t, ColdPeriod, PeriodForMonths([]Month{Janeiro, Julho}))
	assert.Equal(t, ColdPeriod, PeriodForMonths([]Month{Maio}))
	assert.Equal(t, ColdPeriod, PeriodForMonths([]Month{Agosto}))
}

func TestNearestMachine(t *testing.T) {
	table := []MachineSpec{
		{Model: "A", CapacityKW: 10},
		{Model: "B", CapacityKW: 20},
		{Model: "C", CapacityKW: 30},
	}

	t.Run("picks smallest difference", func(t *testing.T) {
		got, err := NearestMachine(table, 19)
		require.NoError(t, err)
		assert.Equal(t, "B", got.Model)
	})

	t.Run("exact tie keeps first candidate reaching the minimum", func(t *testing.T) {
		// 15 is equally far from A (10) and B (20); the strict comparison
		// keeps A, found first.
		got, err := NearestMachine(table, 15)
		require.NoError(t, err)
		assert.Equal(t, "A", got.Model)
	})

	t.Run("empty table errors", func(t *testing.T) {
		_, err := NearestMachine(nil, 10)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}

func TestSelectMachines(t *testing.T) {
	ctx := context.Background()
	catalog := StaticCatalog{}

	t.Run("single entry result with ceil quantity", func(t *testing.T) {
		// 43.4 kW in warm months: AS-60 (47.9 kW) is nearest, one unit.
		sel, err := SelectMachines(ctx, catalog, 43.4, []Month{Janeiro})
		require.NoError(t, err)
		require.Len(t, sel, 1)
		assert.Equal(t, "AS-60", sel[0].Model)
		assert.Equal(t, 1, sel[0].Quantity)
		assert.Equal(t, 47.9, sel[0].CapacityKW)
	})

	t.Run("load above the largest model multiplies quantity", func(t *testing.T) {
		sel, err := SelectMachines(ctx, catalog, 100, []Month{Janeiro})
		require.NoError(t, err)
		require.Len(t, sel, 1)
		assert.Equal(t, "AS-60", sel[0].Model)
		assert.Equal(t, 3, sel[0].Quantity) // ceil(100/47.9)
	})

	t.Run("cold month switches table", func(t *testing.T) {
		warm, err := SelectMachines(ctx, catalog, 20, []Month{Janeiro})
		require.NoError(t, err)
		cold, err := SelectMachines(ctx, catalog, 20, []Month{Junho})
		require.NoError(t, err)
		assert.NotEqual(t, warm[0].CapacityKW, cold[0].CapacityKW)
	})

	t.Run("zero load resolves to smallest model with quantity one", func(t *testing.T) {
		sel, err := SelectMachines(ctx, catalog, 0, nil)
		require.NoError(t, err)
		require.Len(t, sel, 1)
		assert.Equal(t, "AS-9", sel[0].Model)
		assert.Equal(t, 1, sel[0].Quantity)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := SelectMachines(ctx, catalog, 27.3, []Month{Maio})
		require.NoError(t, err)
		second, err := SelectMachines(ctx, catalog, 27.3, []Month{Maio})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestRecomputeMachineEnergy(t *testing.T) {
	t.Run("override quantity changes heating time", func(t *testing.T) {
		sel := []MachineSelection{{Model: "AS-30", Quantity: 2, CapacityKW: 24.1}}
		energy := RecomputeMachineEnergy(40, sel)
		require.NotNil(t, energy.HeatingTimeHours)
		assert.InDelta(t, 40/48.2, *energy.HeatingTimeHours, 1e-9)
		assert.Equal(t, 10.0, energy.TotalElectricPowerKW)
		assert.InDelta(t, (40/48.2)*10, energy.InitialConsumptionKWH, 1e-9)
		assert.Equal(t, 80.0, energy.DailyConsumptionKWH)
	})

	t.Run("zero installed capacity leaves heating time unset", func(t *testing.T) {
		energy := RecomputeMachineEnergy(40, nil)
		assert.Nil(t, energy.HeatingTimeHours)
		assert.Zero(t, energy.InitialConsumptionKWH)
		assert.Zero(t, energy.DailyConsumptionKWH)

		energy = RecomputeMachineEnergy(40, []MachineSelection{{Quantity: 2, CapacityKW: 0}})
		assert.Nil(t, energy.HeatingTimeHours)
		assert.Equal(t, 10.0, energy.TotalElectricPowerKW)
	})

	t.Run("idempotent and side effect free", func(t *testing.T) {
		sel := []MachineSelection{{Model: "AS-14", Quantity: 3, CapacityKW: 11.2}}
		first := RecomputeMachineEnergy(25, sel)
		second := RecomputeMachineEnergy(25, sel)
		assert.Equal(t, *first.HeatingTimeHours, *second.HeatingTimeHours)
		assert.Equal(t, first.DailyConsumptionKWH, second.DailyConsumptionKWH)
		assert.Equal(t, 3, sel[0].Quantity, "selection not mutated")
	})
}
