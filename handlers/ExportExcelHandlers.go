package handlers

import (
	"fmt"
	"net/http"
	"time"

	"backend/services"
	"backend/sizing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportProposalsExcel godoc
// @Summary      Export all proposals to an Excel workbook
// @Tags         proposals
// @Success      200  "XLSX file"
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/proposals/export [get]
func ExportProposalsExcel(svc *services.ProposalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		proposals, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		f := excelize.NewFile()
		defer func() {
			if err := f.Close(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing Excel file"})
			}
		}()

		sheet := "Propostas"
		index, err := f.NewSheet(sheet)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating sheet"})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		headers := []string{
			"Referencia", "Cliente", "Segmento", "Cidade", "Status",
			"Carga termica (kW)", "Vazao simultanea (L/min)",
			"Equipamento", "Qtde", "Criada em",
		}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, p := range proposals {
			values := []interface{}{
				p.Reference, p.ClientName, p.Segment, p.CityName, p.Status,
				"", "", "", "", p.CreatedAt.Format("02/01/2006"),
			}
			if p.Result != nil && p.Result.Pool != nil {
				values[5] = p.Result.Pool.ThermalLoadKW
				if len(p.Result.Pool.SuggestedMachines) > 0 {
					values[7] = p.Result.Pool.SuggestedMachines[0].Model
					values[8] = p.Result.Pool.SuggestedMachines[0].Quantity
				}
			}
			if p.Result != nil && p.Result.Residential != nil {
				values[6] = p.Result.Residential.MaxSimultaneousFlowLpm
				values[7], values[8] = residentialEquipment(p.Result.Residential)
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		c.Header("Content-Disposition",
			fmt.Sprintf("attachment; filename=propostas_%s.xlsx", time.Now().Format("20060102")))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func residentialEquipment(res *sizing.ResidentialResult) (string, interface{}) {
	if res.GasHeater != nil {
		model := res.GasHeater.Model
		if model == "" {
			model = res.GasHeater.CustomModel
		}
		return model, res.GasHeater.Quantity
	}
	if res.SolarCollector != nil {
		model := res.SolarCollector.Model
		if model == "" {
			model = res.SolarCollector.CustomModel
		}
		return model, res.SolarCollector.Quantity
	}
	return "", ""
}
