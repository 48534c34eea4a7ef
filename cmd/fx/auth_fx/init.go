package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripmind/internal/api/controllers"
	"tripmind/internal/repositories"
	"tripmind/internal/services"
)

var Module = fx.Provide(
	provideUserRepo,
	provideAuthService,
	provideAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepositoryInterface) services.AuthServiceInterface {
	return services.NewAuthService(userRepo)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}
