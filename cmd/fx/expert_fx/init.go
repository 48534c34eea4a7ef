package expert_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmind/internal/api/controllers"
	"tripmind/internal/repositories"
	"tripmind/internal/services"
)

var Module = fx.Provide(
	provideExpertProfileRepo,
	provideExpertBookingRepo,
	provideExpertService,
	provideExpertController,
	provideBookingController)

func provideExpertProfileRepo(db *gorm.DB) repositories.ExpertProfileRepositoryInterface {
	return repositories.NewExpertProfileRepository(db)
}

func provideExpertBookingRepo(db *gorm.DB) repositories.ExpertBookingRepositoryInterface {
	return repositories.NewExpertBookingRepository(db)
}

func provideExpertService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ExpertProfileRepositoryInterface,
	bookingRepo repositories.ExpertBookingRepositoryInterface,
) services.ExpertServiceInterface {
	return services.NewExpertService(userRepo, profileRepo, bookingRepo)
}

func provideExpertController(expertService services.ExpertServiceInterface) *controllers.ExpertController {
	return controllers.NewExpertController(expertService)
}

func provideBookingController(expertService services.ExpertServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(expertService)
}
