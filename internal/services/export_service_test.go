package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripforge/internal/catalog"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

func samplePlan() *response_models.Itinerary {
	return &response_models.Itinerary{
		Destination: "Rome",
		Duration:    2,
		TotalBudget: 310,
		TravelTips:  []string{"Validate bus tickets before boarding"},
		EmergencyInfo: &response_models.EmergencyInfo{
			Contacts: []string{"112"},
		},
		Days: []response_models.DayPlan{
			{
				Day:  1,
				Date: "Monday, September 7, 2026",
				Activities: []catalog.Activity{
					{ID: "rome-01", Name: "Colosseum Tour", Description: "Skip-the-line guided visit", EstimatedCost: 45, Location: "Centro", TimeSlot: catalog.SlotMorning, Duration: "2 hours"},
				},
				Notes:     "Welcome to Rome!",
				TotalCost: 45,
			},
			{
				Day:  2,
				Date: "Tuesday, September 8, 2026",
				Activities: []catalog.Activity{
					{ID: "rome-02", Name: "Trastevere Food Walk", Description: "Evening tastings across the quarter", EstimatedCost: 110, TimeSlot: catalog.SlotEvening},
				},
				TotalCost: 110,
			},
		},
	}
}

func TestRenderItineraryPDF(t *testing.T) {
	svc := NewExportService()

	pdfBytes, err := svc.RenderItineraryPDF(samplePlan())
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestRenderItineraryPDFRejectsEmptyPlan(t *testing.T) {
	svc := NewExportService()

	_, err := svc.RenderItineraryPDF(nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.RenderItineraryPDF(&response_models.Itinerary{Destination: "Rome"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
