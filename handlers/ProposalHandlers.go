package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// CreateProposal godoc
// @Summary      Create proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateProposalRequest  true  "Proposal"
// @Success      201   {object}  models.Proposal
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/proposals [post]
func CreateProposal(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProposalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// GetProposals godoc
// @Summary      List proposals
// @Tags         proposals
// @Success      200  {array}  models.Proposal
// @Router       /api/proposals [get]
func GetProposals(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		proposals, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, proposals)
	}
}

// GetProposalByID godoc
// @Summary      Get proposal by ID
// @Tags         proposals
// @Param        id   path      int  true  "Proposal ID"
// @Success      200  {object}  models.Proposal
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/proposals/{id} [get]
func GetProposalByID(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
			return
		}

		p, err := svc.Get(c.Request.Context(), id)
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// UpdateProposal godoc
// @Summary      Update proposal draft and recompute sizing
// @Tags         proposals
// @Param        id    path      int                          true  "Proposal ID"
// @Param        body  body      models.UpdateProposalRequest  true  "Proposal"
// @Success      200   {object}  models.Proposal
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/proposals/{id} [put]
func UpdateProposal(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
			return
		}

		var req models.UpdateProposalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.Update(c.Request.Context(), id, req)
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// RecomputeProposal godoc
// @Summary      Re-run the sizing engine over the stored draft
// @Tags         proposals
// @Param        id   path      int  true  "Proposal ID"
// @Success      200  {object}  models.Proposal
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/proposals/{id}/recompute [post]
func RecomputeProposal(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
			return
		}

		p, err := svc.Recompute(c.Request.Context(), id)
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// OverrideProposalMachines godoc
// @Summary      Apply a manual machine quantity override
// @Tags         proposals
// @Param        id    path      int                            true  "Proposal ID"
// @Param        body  body      models.MachineOverrideRequest  true  "Override"
// @Success      200   {object}  models.Proposal
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/proposals/{id}/machines [put]
func OverrideProposalMachines(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
			return
		}

		var req models.MachineOverrideRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.OverrideMachines(c.Request.Context(), id, req.Machines)
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// DeleteProposal godoc
// @Summary      Delete proposal
// @Tags         proposals
// @Param        id   path      int  true  "Proposal ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/proposals/{id} [delete]
func DeleteProposal(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid proposal id"})
			return
		}

		err = svc.Delete(c.Request.Context(), id)
		if errors.Is(err, services.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Proposal not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Proposal deleted"})
	}
}
