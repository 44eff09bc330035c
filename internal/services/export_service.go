package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

type ExportServiceInterface interface {
	// RenderItineraryPDF renders a plan as a printable PDF document.
	RenderItineraryPDF(plan *response_models.Itinerary) ([]byte, error)
}

type ExportService struct{}

func NewExportService() ExportServiceInterface {
	return &ExportService{}
}

func (s *ExportService) RenderItineraryPDF(plan *response_models.Itinerary) ([]byte, error) {
	if plan == nil || len(plan.Days) == 0 {
		return nil, utils.ErrInvalidInput
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, fmt.Sprintf("%s Itinerary", plan.Destination), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%d days  |  %d traveler(s)  |  total budget $%.2f",
		plan.Duration, maxInt(plan.Preferences.GroupSize, 1), plan.TotalBudget), "", 1, "C", false, 0, "")

	if plan.WeatherSummary != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, plan.WeatherSummary, "", "C", false)
	}
	pdf.Ln(4)

	for _, day := range plan.Days {
		pdf.SetFillColor(230, 236, 245)
		pdf.SetFont("Helvetica", "B", 13)
		header := fmt.Sprintf("Day %d", day.Day)
		if day.Date != "" {
			header = fmt.Sprintf("Day %d  -  %s", day.Day, day.Date)
		}
		pdf.CellFormat(0, 9, header, "", 1, "L", true, 0, "")
		pdf.Ln(1)

		for _, activity := range day.Activities {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, fmt.Sprintf("%s  (%s, $%.2f)", activity.Name, activity.TimeSlot, activity.EstimatedCost),
				"", 1, "L", false, 0, "")

			pdf.SetFont("Helvetica", "", 10)
			details := activity.Description
			if activity.Location != "" {
				details += " Location: " + activity.Location + "."
			}
			if activity.Duration != "" {
				details += " Duration: " + activity.Duration + "."
			}
			pdf.MultiCell(0, 5, details, "", "L", false)
			pdf.Ln(1)
		}

		if day.Notes != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, "Notes: "+day.Notes, "", "L", false)
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, fmt.Sprintf("Day total: $%.2f per person", day.TotalCost), "", 1, "R", false, 0, "")
		pdf.Ln(3)
	}

	if len(plan.TravelTips) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Travel Tips", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, tip := range plan.TravelTips {
			pdf.MultiCell(0, 5, "- "+tip, "", "L", false)
		}
		pdf.Ln(2)
	}

	if info := plan.EmergencyInfo; info != nil {
		lines := make([]string, 0, 3)
		if len(info.Contacts) > 0 {
			lines = append(lines, "Contacts: "+strings.Join(info.Contacts, ", "))
		}
		if len(info.Hospitals) > 0 {
			lines = append(lines, "Hospitals: "+strings.Join(info.Hospitals, ", "))
		}
		if len(info.Embassies) > 0 {
			lines = append(lines, "Embassies: "+strings.Join(info.Embassies, ", "))
		}
		if len(lines) > 0 {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.CellFormat(0, 8, "Emergency Information", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range lines {
				pdf.MultiCell(0, 5, line, "", "L", false)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
