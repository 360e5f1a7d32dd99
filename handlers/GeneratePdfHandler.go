package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"backend/services"
	"backend/sizing"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GenerateProposalPDF godoc
// @Summary      Generate proposal PDF
// @Tags         proposals
// @Param        id   path  int  true  "Proposal ID"
// @Success      200  "PDF file"
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/proposals/{id}/pdf [get]
func GenerateProposalPDF(svc *services.ProposalService) gin.HandlerFunc {
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

		titleCaser := cases.Title(language.BrazilianPortuguese)

		pdf := gofpdf.New("P", "mm", "A4", "")
		pdf.AddPage()
		pdf.SetMargins(10, 10, 10)

		// --- Header ---
		pdf.SetFont("Arial", "B", 18)
		pdf.Cell(150, 10, "PROPOSTA COMERCIAL")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(40, 10, p.Reference, "", 1, "R", false, 0, "")
		pdf.Ln(4)

		// --- Client ---
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(190, 8, "Cliente")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(95, 6, titleCaser.String(p.ClientName))
		pdf.Cell(95, 6, p.ClientEmail)
		pdf.Ln(6)
		pdf.Cell(95, 6, fmt.Sprintf("Cidade: %s", p.CityName))
		pdf.Cell(95, 6, p.ClientPhone)
		pdf.Ln(10)

		switch {
		case p.Result != nil && p.Result.Pool != nil:
			writePoolSection(pdf, p.Result.Pool)
		case p.Result != nil && p.Result.Residential != nil:
			writeResidentialSection(pdf, p.Result.Residential)
		default:
			pdf.SetFont("Arial", "I", 10)
			pdf.Cell(190, 8, "Dimensionamento ainda nao calculado.")
			pdf.Ln(8)
		}

		// --- QR code linking back to the proposal ---
		baseURL := os.Getenv("PUBLIC_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:9000"
		}
		qrPNG, err := qrcode.Encode(fmt.Sprintf("%s/api/proposals/%d", baseURL, p.ID), qrcode.Medium, 256)
		if err == nil {
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("proposal-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("proposal-qr", 170, 260, 25, 25, false, opts, 0, "")
		}

		var buf bytes.Buffer
		if err := pdf.Output(&buf); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=proposta_%s.pdf", p.Reference))
		c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	}
}

func writePoolSection(pdf *gofpdf.Fpdf, pool *sizing.PoolResult) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "Dimensionamento - Aquecimento de Piscina")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 8, "Grandeza", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 8, "Valor", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 8, "Carga termica", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, fmt.Sprintf("%.2f kW", pool.ThermalLoadKW), "1", 1, "C", false, 0, "")
	pdf.CellFormat(95, 8, "Tempo de aquecimento previsto", "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 8, fmt.Sprintf("%.0f h", pool.HeatingHours), "1", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(60, 8, "Equipamento", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Qtde", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Capacidade", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Vazao", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, m := range pool.SuggestedMachines {
		pdf.CellFormat(60, 8, m.Model, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, strconv.Itoa(m.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.1f kW", m.CapacityKW), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.1f m3/h", m.FlowM3H), "1", 1, "C", false, 0, "")
	}

	if pool.Energy.HeatingTimeHours != nil {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Tempo de aquecimento com a selecao atual: %.1f h", *pool.Energy.HeatingTimeHours))
		pdf.Ln(6)
		pdf.Cell(190, 6, fmt.Sprintf("Consumo inicial estimado: %.1f kWh", pool.Energy.InitialConsumptionKWH))
		pdf.Ln(6)
		pdf.Cell(190, 6, fmt.Sprintf("Consumo diario estimado: %.1f kWh", pool.Energy.DailyConsumptionKWH))
		pdf.Ln(6)
	}
}

func writeResidentialSection(pdf *gofpdf.Fpdf, res *sizing.ResidentialResult) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(190, 8, "Dimensionamento - Aquecimento Residencial")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(190, 6, fmt.Sprintf("Vazao maxima simultanea: %.1f L/min (%.0f L/h)",
		res.MaxSimultaneousFlowLpm, res.MaxSimultaneousFlowLph))
	pdf.Ln(10)

	if res.GasHeater != nil {
		model := res.GasHeater.Model
		if model == "" {
			model = res.GasHeater.CustomModel
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Opcao 02 - Aquecedor a Gas")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Potencia calculada: %.0f kcal/h", res.GasHeater.CalculatedPowerKcalH))
		pdf.Ln(6)
		pdf.Cell(190, 6, fmt.Sprintf("Modelo: %s  (quantidade: %d)", model, res.GasHeater.Quantity))
		pdf.Ln(10)
	}

	if res.SolarCollector != nil {
		model := res.SolarCollector.Model
		if model == "" {
			model = res.SolarCollector.CustomModel
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(190, 8, "Opcao 03 - Coletores Solares")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.Cell(190, 6, fmt.Sprintf("Area coletora necessaria: %.1f m2", res.SolarCollector.CalculatedRequiredAreaM2))
		pdf.Ln(6)
		pdf.Cell(190, 6, fmt.Sprintf("Modelo: %s  (quantidade: %d)", model, res.SolarCollector.Quantity))
		pdf.Ln(6)
	}
}
