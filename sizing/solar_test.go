package sizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredCollectorArea(t *testing.T) {
	// Same demand as the gas scenario: 42,352.94 kcal/h, 70% coverage at
	// 600 kcal/h per m2.
	area := RequiredCollectorArea(20, 40, 10, 0.85, 600)
	assert.InDelta(t, 49.41, area, 0.01)
}

func TestPreselectSolarCollector(t *testing.T) {
	ctx := context.Background()
	catalog := StaticCatalog{}

	t.Run("defaults to the 2.5 m2 collector with ceil quantity", func(t *testing.T) {
		sel, err := PreselectSolarCollector(ctx, catalog, 49.41, nil)
		require.NoError(t, err)
		assert.Equal(t, "SC-250", sel.Model)
		assert.Equal(t, 20, sel.Quantity) // ceil(49.41 / 2.5)
		assert.InDelta(t, 49.41, sel.CalculatedRequiredAreaM2, 1e-9)
	})

	t.Run("second entry when the 2.5 m2 area is absent", func(t *testing.T) {
		table := []SolarCollectorSpec{
			{Model: "P-100", AreaM2: 1.0},
			{Model: "P-200", AreaM2: 2.0},
			{Model: "P-300", AreaM2: 3.0},
		}
		def, err := defaultCollector(table)
		require.NoError(t, err)
		assert.Equal(t, "P-200", def.Model)
	})

	t.Run("chosen model keeps its binding, quantity refreshed", func(t *testing.T) {
		current := &SelectedSolarCollector{Model: "SC-200", Quantity: 3}
		sel, err := PreselectSolarCollector(ctx, catalog, 49.41, current)
		require.NoError(t, err)
		assert.Equal(t, "SC-200", sel.Model)
		assert.Equal(t, 25, sel.Quantity) // ceil(49.41 / 2.0)
	})

	t.Run("custom model left untouched", func(t *testing.T) {
		current := &SelectedSolarCollector{CustomModel: "Coletor importado", Quantity: 7}
		sel, err := PreselectSolarCollector(ctx, catalog, 49.41, current)
		require.NoError(t, err)
		assert.Equal(t, "Coletor importado", sel.CustomModel)
		assert.Equal(t, 7, sel.Quantity)
	})

	t.Run("zero required area clamps quantity to one", func(t *testing.T) {
		sel, err := PreselectSolarCollector(ctx, catalog, 0, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Quantity)
	})

	t.Run("input selection not mutated", func(t *testing.T) {
		current := &SelectedSolarCollector{Model: "SC-200", Quantity: 3}
		_, err := PreselectSolarCollector(ctx, catalog, 10, current)
		require.NoError(t, err)
		assert.Equal(t, 3, current.Quantity)
	})

	t.Run("empty catalog errors", func(t *testing.T) {
		_, err := defaultCollector(nil)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}
