package sizing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredGasPower(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		// 20 L/min at 40 C consumption with a 10 C minimum:
		// 1200 L/h * 30 / 0.85.
		power := RequiredGasPower(20, 40, 10, 0.85)
		assert.InDelta(t, 42352.94, power, 0.01)
	})

	t.Run("consumption below ambient clamps to zero", func(t *testing.T) {
		assert.Zero(t, RequiredGasPower(20, 8, 10, 0.85))
	})

	t.Run("non-positive efficiency falls back to default", func(t *testing.T) {
		assert.Equal(t, RequiredGasPower(20, 40, 10, DefaultHeaterEfficiency), RequiredGasPower(20, 40, 10, 0))
	})
}

func TestMinAmbientTempForCity(t *testing.T) {
	assert.Equal(t, 8.0, MinAmbientTempForCity("Curitiba"))
	assert.Equal(t, 10.0, MinAmbientTempForCity("São Paulo"), "accented lookup")
	assert.Equal(t, 10.0, MinAmbientTempForCity("sao paulo"))
	assert.Equal(t, DefaultMinAmbientTemp, MinAmbientTempForCity("Atlantis"), "unknown city defaults")
	assert.Equal(t, DefaultMinAmbientTemp, MinAmbientTempForCity(""))
}

func TestNearestGasHeater(t *testing.T) {
	table := DefaultGasHeaters()

	t.Run("nearest model for reference demand", func(t *testing.T) {
		got, err := NearestGasHeater(table, 42352.94)
		require.NoError(t, err)
		assert.Equal(t, "GN-40", got.Model)
	})

	t.Run("empty catalog errors", func(t *testing.T) {
		_, err := NearestGasHeater(nil, 10000)
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})
}

func TestPreselectGasHeater(t *testing.T) {
	ctx := context.Background()
	catalog := StaticCatalog{}

	t.Run("first computation binds nearest model", func(t *testing.T) {
		sel, err := PreselectGasHeater(ctx, catalog, 42352.94, nil)
		require.NoError(t, err)
		assert.Equal(t, "GN-40", sel.Model)
		assert.Equal(t, 1, sel.Quantity)
		assert.InDelta(t, 42352.94, sel.CalculatedPowerKcalH, 0.01)
	})

	t.Run("existing catalog choice not overridden", func(t *testing.T) {
		current := &SelectedGasHeater{Model: "GN-20", Quantity: 2}
		sel, err := PreselectGasHeater(ctx, catalog, 42352.94, current)
		require.NoError(t, err)
		assert.Equal(t, "GN-20", sel.Model)
		assert.Equal(t, 2, sel.Quantity)
		assert.InDelta(t, 42352.94, sel.CalculatedPowerKcalH, 0.01, "power still refreshed")
	})

	t.Run("custom text suppresses pre-selection", func(t *testing.T) {
		current := &SelectedGasHeater{CustomModel: "Aquecedor XPTO 35"}
		sel, err := PreselectGasHeater(ctx, catalog, 42352.94, current)
		require.NoError(t, err)
		assert.Empty(t, sel.Model)
		assert.Equal(t, "Aquecedor XPTO 35", sel.CustomModel)
	})

	t.Run("input selection not mutated", func(t *testing.T) {
		current := &SelectedGasHeater{Model: "GN-20"}
		_, err := PreselectGasHeater(ctx, catalog, 30000, current)
		require.NoError(t, err)
		assert.Zero(t, current.CalculatedPowerKcalH)
	})
}
