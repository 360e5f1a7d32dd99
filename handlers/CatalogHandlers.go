package handlers

import (
	"database/sql"
	"net/http"

	"backend/repository"
	"backend/sizing"

	"github.com/gin-gonic/gin"
)

// GetMachineCatalog godoc
// @Summary      List heat pump models for a period
// @Tags         catalogs
// @Param        period  query  string  false  "cold or warm (default warm)"
// @Success      200  {array}  sizing.MachineSpec
// @Router       /api/catalogs/machines [get]
func GetMachineCatalog(db *sql.DB) gin.HandlerFunc {
	repo := repository.NewCatalogRepository(db)
	return func(c *gin.Context) {
		period := sizing.WarmPeriod
		if c.Query("period") == string(sizing.ColdPeriod) {
			period = sizing.ColdPeriod
		}
		specs, err := repo.Machines(c.Request.Context(), period)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, specs)
	}
}

// GetGasHeaterCatalog godoc
// @Summary      List gas heater models
// @Tags         catalogs
// @Success      200  {array}  sizing.GasHeaterSpec
// @Router       /api/catalogs/gas-heaters [get]
func GetGasHeaterCatalog(db *sql.DB) gin.HandlerFunc {
	repo := repository.NewCatalogRepository(db)
	return func(c *gin.Context) {
		specs, err := repo.GasHeaters(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, specs)
	}
}

// GetSolarCollectorCatalog godoc
// @Summary      List solar collector models
// @Tags         catalogs
// @Success      200  {array}  sizing.SolarCollectorSpec
// @Router       /api/catalogs/solar-collectors [get]
func GetSolarCollectorCatalog(db *sql.DB) gin.HandlerFunc {
	repo := repository.NewCatalogRepository(db)
	return func(c *gin.Context) {
		specs, err := repo.SolarCollectors(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, specs)
	}
}
