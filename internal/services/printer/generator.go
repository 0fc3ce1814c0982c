package printer

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/wisecrew/careers/internal/models"
	"github.com/wisecrew/careers/internal/pipeline"
)

// GenerateApplicationSummaryPDF renders a one-page summary of an
// application for the hiring panel: candidate details, status, and a
// QR code per scheduled round pointing at its test link.
func GenerateApplicationSummaryPDF(app *models.Application, baseURL string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Wisecrew Careers - Application Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Reference: %s", app.ReferenceID), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	row := func(label, value string) {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	if c := app.Candidate; c != nil {
		row("Candidate", c.Name)
		row("Email", c.Email)
		row("Phone", c.Phone)
		row("Location", c.Location)
		row("Experience", c.ExperienceYears+" years")
		row("Skills", c.Skills)
	}
	row("Position", app.JobTitle)
	row("Status", string(app.Status))
	row("Applied", app.AppliedDate)
	row("Last updated", app.LastUpdated)
	if app.Notes != "" {
		row("Notes", app.Notes)
	}
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 9, "Assessment Rounds", "", 1, "L", false, 0, "")

	for i, round := range pipeline.Rounds() {
		details := app.Schedule.Round(round)
		if details == nil {
			continue
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, round.Label(), "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", details.Status), "", 1, "L", false, 0, "")
		if details.ScheduledDate != "" {
			pdf.CellFormat(0, 6, fmt.Sprintf("Scheduled: %s", details.ScheduledDate), "", 1, "L", false, 0, "")
		}
		if details.Score != "" {
			pdf.CellFormat(0, 6, fmt.Sprintf("Score: %s", details.Score), "", 1, "L", false, 0, "")
		}
		if details.Feedback != "" {
			pdf.MultiCell(0, 6, fmt.Sprintf("Feedback: %s", details.Feedback), "", "L", false)
		}

		// A scheduled round gets a QR code for its access link so the
		// panel can open the session from a printout.
		if details.Link != "" {
			qrContent := baseURL + details.Link
			qrPng, err := qrcode.Encode(qrContent, qrcode.Low, 256)
			if err != nil {
				return nil, err
			}

			imgName := fmt.Sprintf("qr_round_%d", i+1)
			imgOptions := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
			reader := bytes.NewReader(qrPng)
			_ = pdf.RegisterImageOptionsReader(imgName, imgOptions, reader)

			x := pdf.GetX()
			y := pdf.GetY()
			pdf.ImageOptions(imgName, x, y, 22, 22, false, imgOptions, 0, "")
			pdf.SetXY(x+25, y+8)
			pdf.SetFont("Arial", "", 8)
			pdf.CellFormat(0, 5, qrContent, "", 1, "L", false, 0, "")
			pdf.SetY(y + 24)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
