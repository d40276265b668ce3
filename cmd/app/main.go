package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/admin_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/places_fx"
	"voyago/cmd/fx/planner_fx"
	"voyago/cmd/fx/prompt_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		places_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		prompt_fx.Module,
		admin_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	placesController *controllers.PlacesController,
	planController *controllers.PlanController,
	itineraryController *controllers.ItineraryController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, placesController, planController, itineraryController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	planController *controllers.PlanController,
	itineraryController *controllers.ItineraryController,
	adminController *controllers.AdminController) {

	api := r.Group("/api")
	api.POST("/fetch_places", placesController.FetchPlaces)
	api.POST("/fetch_activities", placesController.FetchActivities)
	api.POST("/generate_plan", planController.GeneratePlan)
	api.POST("/plan/day", planController.PlanDay)

	api.GET("/tiers", itineraryController.GetTiers)
	api.POST("/itinerary/generate", itineraryController.GenerateItinerary)
	api.POST("/itinerary/extract", itineraryController.ExtractTrip)

	admin := api.Group("/admin")
	admin.POST("/login", adminController.Login)

	guarded := admin.Group("")
	guarded.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	guarded.DELETE("/places/:id", placesController.DeletePlace)
}
