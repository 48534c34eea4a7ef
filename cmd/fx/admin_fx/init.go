package admin_fx

import (
	"go.uber.org/fx"

	"tripmind/internal/api/controllers"
	"tripmind/internal/repositories"
	"tripmind/internal/services"
)

var Module = fx.Provide(
	provideAdminService,
	provideAdminController)

func provideAdminService(
	userRepo repositories.UserRepositoryInterface,
	tripRepo repositories.TripRepositoryInterface,
	profileRepo repositories.ExpertProfileRepositoryInterface,
	bookingRepo repositories.ExpertBookingRepositoryInterface,
) services.AdminServiceInterface {
	return services.NewAdminService(userRepo, tripRepo, profileRepo, bookingRepo)
}

func provideAdminController(adminService services.AdminServiceInterface) *controllers.AdminController {
	return controllers.NewAdminController(adminService)
}
