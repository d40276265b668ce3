package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type PlanController struct {
	itineraryService services.ItineraryServiceInterface
	greedyPlanner    services.PlanGenerator
	promptPlanner    services.PlanGenerator
}

func NewPlanController(
	itineraryService services.ItineraryServiceInterface,
	greedyPlanner *services.PlannerService,
	promptPlanner *services.PromptPlanService,
) *PlanController {
	return &PlanController{
		itineraryService: itineraryService,
		greedyPlanner:    greedyPlanner,
		promptPlanner:    promptPlanner,
	}
}

// GeneratePlan serves a pre-materialized day, bypassing the live planner.
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	activities, err := p.itineraryService.GetDayPlan(c.Request.Context(), req.Day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Plan generated successfully")
}

// PlanDay runs live day planning. The greedy scheduler is the default;
// ?strategy=ai selects the prompt-based generator.
func (p *PlanController) PlanDay(c *gin.Context) {
	var req request_models.DayPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	generator := p.greedyPlanner
	if c.Query("strategy") == "ai" {
		generator = p.promptPlanner
	}

	plan, err := generator.GenerateDayPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Day plan generated successfully")
}
