package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmind/internal/api/controllers"
	"tripmind/internal/repositories"
	"tripmind/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepositoryInterface {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepositoryInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
