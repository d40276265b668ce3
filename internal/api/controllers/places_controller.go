package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

const defaultRadiusM = 3000

// Default search center when a request omits the location (Montreal).
var defaultLocation = []float64{45.5128, -73.5460}

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{placeService: placeService}
}

func (p *PlacesController) FetchPlaces(c *gin.Context) {
	var req request_models.FetchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Location) != 2 || req.Query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields: 'location' and 'query'")
		return
	}
	if req.Radius <= 0 {
		req.Radius = defaultRadiusM
	}

	places, err := p.placeService.FetchPlaces(c.Request.Context(), req.Location[0], req.Location[1], req.Radius, req.Query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) FetchActivities(c *gin.Context) {
	var req request_models.FetchActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Location) == 0 {
		req.Location = defaultLocation
	}
	if len(req.Location) != 2 {
		utils.RespondError(c, http.StatusBadRequest, "Location must be a [lat, lng] pair")
		return
	}
	if req.Radius <= 0 {
		req.Radius = defaultRadiusM
	}

	places, err := p.placeService.FetchActivities(c.Request.Context(), req.Location[0], req.Location[1], req.Radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Activities fetched successfully")
}

func (p *PlacesController) DeletePlace(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}
	if err := p.placeService.DeletePlace(c.Request.Context(), placeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Place deleted successfully")
}
