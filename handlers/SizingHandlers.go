package handlers

import (
	"net/http"

	"backend/sizing"

	"github.com/gin-gonic/gin"
)

// Stateless sizing endpoints: the frontend calls these on every relevant
// field change so the operator sees live figures before the proposal is
// saved. Nothing here touches persistence.

// ComputePoolSizing godoc
// @Summary      Compute pool thermal load and machine suggestion
// @Tags         sizing
// @Accept       json
// @Produce      json
// @Param        body  body      sizing.ProposalDraft  true  "Pool draft"
// @Success      200   {object}  sizing.PoolResult
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/sizing/pool [post]
func ComputePoolSizing(engine *sizing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft sizing.ProposalDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft.Segment = sizing.SegmentPool

		result, err := engine.Recompute(c.Request.Context(), draft)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result.Pool)
	}
}

// ComputeResidentialSizing godoc
// @Summary      Compute simultaneous flow, gas heater and solar collector sizing
// @Tags         sizing
// @Accept       json
// @Produce      json
// @Param        body  body      sizing.ProposalDraft  true  "Residential draft"
// @Success      200   {object}  sizing.ResidentialResult
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/sizing/residential [post]
func ComputeResidentialSizing(engine *sizing.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft sizing.ProposalDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft.Segment = sizing.SegmentResidential

		result, err := engine.Recompute(c.Request.Context(), draft)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result.Residential)
	}
}

// machineEnergyRequest carries a selection state for the energy figures.
type machineEnergyRequest struct {
	ThermalLoadKW float64                   `json:"thermal_load_kw"`
	Machines      []sizing.MachineSelection `json:"machines" binding:"required"`
}

// ComputeMachineEnergy godoc
// @Summary      Recompute heating time and energy after a quantity override
// @Tags         sizing
// @Accept       json
// @Produce      json
// @Param        body  body      handlers.machineEnergyRequest  true  "Selection state"
// @Success      200   {object}  sizing.MachineEnergy
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/sizing/machines/energy [post]
func ComputeMachineEnergy() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req machineEnergyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sizing.RecomputeMachineEnergy(req.ThermalLoadKW, req.Machines))
	}
}
