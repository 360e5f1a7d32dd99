package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindFactor(t *testing.T) {
	cases := []struct {
		wind float64
		want float64
	}{
		{18, 1.15},
		{18.01, 1.25},
		{35, 1.25},
		{35.01, 1.80},
		{44, 1.80},
		{50, 1.80},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WindFactor(tc.wind), "wind %.2f km/h", tc.wind)
	}
}

func TestTempFactor(t *testing.T) {
	t.Run("unity at or below 31 regardless of hours", func(t *testing.T) {
		assert.Equal(t, 1.0, TempFactor(31, 65))
		assert.Equal(t, 1.0, TempFactor(28, 65))
		assert.Equal(t, 1.0, TempFactor(31, 24))
	})

	t.Run("only fires above 31 with a daily budget", func(t *testing.T) {
		assert.Equal(t, 1.0, TempFactor(33, 24), "occasional use never penalized")
		assert.InDelta(t, 1.3, TempFactor(33, 65), 1e-9)
		assert.InDelta(t, 1.15, TempFactor(32, 65), 1e-9)
	})
}

func TestHeatingHours(t *testing.T) {
	assert.Equal(t, 65.0, HeatingHours(UseFrequencyDaily))
	assert.Equal(t, 24.0, HeatingHours(UseFrequencyOccasional))
	assert.Equal(t, 24.0, HeatingHours(""), "unknown frequency treated as occasional")
}

func TestComputeThermalLoad(t *testing.T) {
	usage := UsageParameters{DesiredTemp: 28, UseFrequency: UseFrequencyOccasional}
	climate := ClimateConditions{MinTemp: 15, WindSpeed: 10}

	t.Run("shallow capacity scales with surface and delta T", func(t *testing.T) {
		base := ComputeThermalLoad([]WaterArea{{Length: 5, Width: 2, Depth: 0.5}}, Accessories{}, usage, climate)
		double := ComputeThermalLoad([]WaterArea{{Length: 10, Width: 2, Depth: 0.5}}, Accessories{}, usage, climate)
		assert.InDelta(t, 2*base.TotalCapacityKW, double.TotalCapacityKW, 1e-9)

		colder := ComputeThermalLoad([]WaterArea{{Length: 5, Width: 2, Depth: 0.5}}, Accessories{}, usage,
			ClimateConditions{MinTemp: 2, WindSpeed: 10})
		assert.InDelta(t, base.TotalCapacityKW*(28-2)/(28-15), colder.TotalCapacityKW, 1e-9)
	})

	t.Run("deep capacity scales with volume and delta T", func(t *testing.T) {
		base := ComputeThermalLoad([]WaterArea{{Length: 8, Width: 4, Depth: 1.2}}, Accessories{}, usage, climate)
		deeper := ComputeThermalLoad([]WaterArea{{Length: 8, Width: 4, Depth: 2.4}}, Accessories{}, usage, climate)
		assert.InDelta(t, 2*base.TotalCapacityKW, deeper.TotalCapacityKW, 1e-9)
	})

	t.Run("deep formula value", func(t *testing.T) {
		// Scenario: single 10x4x1.5 pool, desired 28, min 15, wind 20 km/h,
		// occasional use.
		load := ComputeThermalLoad([]WaterArea{{Length: 10, Width: 4, Depth: 1.5}}, Accessories{},
			usage, ClimateConditions{MinTemp: 15, WindSpeed: 20})
		want := 10 * 4 * 1.5 * 1000 * 13 * 1.25 * 4.18 / (3600 * 24)
		assert.InDelta(t, want, load.TotalCapacityKW, 1e-9)
		assert.Equal(t, 24.0, load.HeatingHours)
	})

	t.Run("area with a zero dimension contributes nothing", func(t *testing.T) {
		load := ComputeThermalLoad([]WaterArea{
			{Length: 10, Width: 0, Depth: 1.5},
			{Length: 0, Width: 4, Depth: 1.5},
			{Length: 10, Width: 4, Depth: 0},
		}, Accessories{}, usage, climate)
		assert.Zero(t, load.TotalCapacityKW)
	})

	t.Run("empty area list tolerated", func(t *testing.T) {
		load := ComputeThermalLoad(nil, Accessories{}, usage, climate)
		assert.Zero(t, load.TotalCapacityKW)
	})

	t.Run("negative delta T clamps to zero load", func(t *testing.T) {
		load := ComputeThermalLoad([]WaterArea{{Length: 10, Width: 4, Depth: 1.5}}, Accessories{},
			UsageParameters{DesiredTemp: 12, UseFrequency: UseFrequencyOccasional},
			ClimateConditions{MinTemp: 15, WindSpeed: 10})
		assert.Zero(t, load.TotalCapacityKW)
	})

	t.Run("accessories always use the shallow formula", func(t *testing.T) {
		acc := Accessories{Waterfalls: []Waterfall{{Height: 2, Width: 1.5}}}
		withAcc := ComputeThermalLoad(nil, acc, usage, climate)
		want := 1.5 * 2 * 0.06 * 13 * 1.15 / 24
		assert.InDelta(t, want, withAcc.TotalCapacityKW, 1e-9)

		edge := Accessories{InfinityEdges: []InfinityEdge{{Length: 6, Height: 0.4, Width: 0.3}}}
		withEdge := ComputeThermalLoad(nil, edge, usage, climate)
		assert.InDelta(t, 6*0.4*0.06*13*1.15/24, withEdge.TotalCapacityKW, 1e-9)
	})

	t.Run("incomplete accessory skipped", func(t *testing.T) {
		acc := Accessories{Waterfalls: []Waterfall{{Height: 2}}}
		load := ComputeThermalLoad(nil, acc, usage, climate)
		assert.Zero(t, load.TotalCapacityKW)
	})

	t.Run("enclosed factor applied once over the sum", func(t *testing.T) {
		areas := []WaterArea{{Length: 5, Width: 2, Depth: 0.5}, {Length: 3, Width: 2, Depth: 1.0}}
		open := ComputeThermalLoad(areas, Accessories{}, usage, climate)
		enclosed := usage
		enclosed.IsEnclosed = true
		closed := ComputeThermalLoad(areas, Accessories{}, enclosed, climate)
		assert.InDelta(t, open.TotalCapacityKW*1.15, closed.TotalCapacityKW, 1e-9)
	})

	t.Run("suspended factor", func(t *testing.T) {
		areas := []WaterArea{{Length: 5, Width: 2, Depth: 0.5}}
		normal := ComputeThermalLoad(areas, Accessories{}, usage, climate)
		suspended := usage
		suspended.IsSuspended = true
		raised := ComputeThermalLoad(areas, Accessories{}, suspended, climate)
		assert.InDelta(t, normal.TotalCapacityKW*1.5, raised.TotalCapacityKW, 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		areas := []WaterArea{{Length: 7, Width: 3.5, Depth: 1.4}}
		first := ComputeThermalLoad(areas, Accessories{}, usage, climate)
		second := ComputeThermalLoad(areas, Accessories{}, usage, climate)
		assert.Equal(t, first, second)
	})
}

func TestWaterAreaIsShallow(t *testing.T) {
	assert.True(t, WaterArea{Depth: 0.6}.IsShallow())
	assert.True(t, WaterArea{Depth: 0.3}.IsShallow())
	assert.False(t, WaterArea{Depth: 0.61}.IsShallow())
	assert.False(t, WaterArea{Depth: 0}.IsShallow())
}
