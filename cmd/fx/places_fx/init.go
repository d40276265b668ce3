package places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/api/controllers"
	"voyago/internal/providers"
	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	providePlaceProvider,
	providePlaceRepo,
	providePlaceService,
	controllers.NewPlacesController)

func providePlaceProvider() providers.PlaceProvider {
	return providers.NewGooglePlacesClient()
}

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository, provider providers.PlaceProvider) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo, provider)
}
