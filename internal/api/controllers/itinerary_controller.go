package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	promptService    *services.PromptPlanService
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	promptService *services.PromptPlanService,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		promptService:    promptService,
	}
}

func (i *ItineraryController) GetTiers(c *gin.Context) {
	utils.RespondSuccess(c, i.itineraryService.ListTiers(), "Tiers fetched successfully")
}

func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	rows, err := i.itineraryService.GetItineraryByName(c.Request.Context(), req.Location, req.Duration, req.Plan)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"itinerary": rows}, "Itinerary fetched successfully")
}

func (i *ItineraryController) ExtractTrip(c *gin.Context) {
	var req request_models.ExtractTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query is required")
		return
	}

	extraction, err := i.promptService.ExtractTrip(c.Request.Context(), req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, extraction, "Trip extracted successfully")
}
