package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmind/internal/api/controllers"
	"tripmind/internal/repositories"
	"tripmind/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTripService,
	provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepositoryInterface {
	return repositories.NewTripRepository(db)
}

func provideTripService(tripRepo repositories.TripRepositoryInterface) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
