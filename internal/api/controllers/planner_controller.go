package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripforge/internal/catalog"
	"tripforge/internal/models/request_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

type PlannerController struct {
	plannerService     services.PlannerServiceInterface
	interpreterService services.InterpreterServiceInterface
	catalog            *catalog.Catalog
}

func NewPlannerController(
	plannerService services.PlannerServiceInterface,
	interpreterService services.InterpreterServiceInterface,
	cat *catalog.Catalog,
) *PlannerController {
	return &PlannerController{
		plannerService:     plannerService,
		interpreterService: interpreterService,
		catalog:            cat,
	}
}

// GeneratePlanHandler godoc
// @Summary Generate an itinerary from structured preferences
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.PlanRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /planner/generate [post]
func (p *PlannerController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.plannerService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Itinerary generated successfully")
}

// ChatPlanHandler interprets a free-text query and generates a plan from the
// extracted preferences. When no destination can be inferred, the extracted
// fragment is returned without an itinerary so the client can prompt for more.
// @Summary Generate an itinerary from a natural language query
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ChatPlanRequest true "Free-text trip query"
// @Success 200 {object} utils.APIResponse
// @Router /planner/chat [post]
func (p *PlannerController) ChatPlanHandler(c *gin.Context) {
	var req request_models.ChatPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	extracted := p.interpreterService.ExtractPreferences(req.Prompt)

	resp := response_models.ChatPlanResponse{
		Query:     req.Prompt,
		Extracted: extracted,
	}

	if extracted.Destination == nil {
		utils.RespondSuccess(c, resp, "Could not determine a destination; please mention where you want to go")
		return
	}

	plan, err := p.plannerService.GenerateItinerary(c.Request.Context(), services.PlanRequestFromExtracted(extracted))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp.Itinerary = plan
	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// ParseQueryHandler exposes the interpreter on its own, without generation.
// @Summary Extract trip preferences from a natural language query
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.ChatPlanRequest true "Free-text trip query"
// @Success 200 {object} utils.APIResponse
// @Router /planner/parse [post]
func (p *PlannerController) ParseQueryHandler(c *gin.Context) {
	var req request_models.ChatPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	extracted := p.interpreterService.ExtractPreferences(req.Prompt)
	utils.RespondSuccess(c, extracted, "Query parsed successfully")
}

// ListDestinationsHandler godoc
// @Summary List destinations with curated activity catalogs
// @Tags Planner
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /planner/destinations [get]
func (p *PlannerController) ListDestinationsHandler(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"destinations": p.catalog.Destinations()}, "Destinations fetched successfully")
}
