package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	exportService    services.ExportServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		exportService:    exportService,
	}
}

// SaveItineraryHandler godoc
// @Summary Save a generated itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body response_models.Itinerary true "Generated itinerary"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) SaveItineraryHandler(c *gin.Context) {
	accountId, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid account id")
		return
	}

	var plan response_models.Itinerary
	if err := c.ShouldBindJSON(&plan); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := i.itineraryService.SaveItinerary(c.Request.Context(), accountId, &plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Itinerary saved successfully")
}

// ListItinerariesHandler godoc
// @Summary List saved itineraries for the current account
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItinerariesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	summaries, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Itineraries fetched successfully")
}

// GetItineraryHandler godoc
// @Summary Fetch one saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [get]
func (i *ItineraryController) GetItineraryHandler(c *gin.Context) {
	plan, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary fetched successfully")
}

// DeleteItineraryHandler godoc
// @Summary Delete a saved itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (i *ItineraryController) DeleteItineraryHandler(c *gin.Context) {
	err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

type shareRequest struct {
	Shared bool `json:"shared"`
}

// ShareItineraryHandler godoc
// @Summary Toggle public sharing for a saved itinerary
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param id path string true "Itinerary id"
// @Param request body shareRequest true "Sharing flag"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/share [post]
func (i *ItineraryController) ShareItineraryHandler(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := i.itineraryService.SetShared(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Shared)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Itinerary is now private"
	if req.Shared {
		message = "Itinerary is now shared"
	}
	utils.RespondSuccess(c, gin.H{"shared": req.Shared}, message)
}

// GetSharedItineraryHandler serves publicly shared plans without auth.
// @Summary Fetch a shared itinerary
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Router /shared/{id} [get]
func (i *ItineraryController) GetSharedItineraryHandler(c *gin.Context) {
	plan, err := i.itineraryService.GetSharedItinerary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Shared itinerary fetched successfully")
}

// RelatedItinerariesHandler godoc
// @Summary Find shared itineraries similar to one of yours
// @Tags Itineraries
// @Produce json
// @Param id path string true "Itinerary id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id}/related [get]
func (i *ItineraryController) RelatedItinerariesHandler(c *gin.Context) {
	summaries, err := i.itineraryService.FindRelated(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Related itineraries fetched successfully")
}

// ExportItineraryHandler streams the itinerary as a PDF download.
// @Summary Export a saved itinerary as PDF
// @Tags Itineraries
// @Produce application/pdf
// @Param id path string true "Itinerary id"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /itineraries/{id}/export [get]
func (i *ItineraryController) ExportItineraryHandler(c *gin.Context) {
	plan, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := i.exportService.RenderItineraryPDF(plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", c.Param("id"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
