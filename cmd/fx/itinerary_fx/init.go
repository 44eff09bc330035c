package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripforge/internal/api/controllers"
	"tripforge/internal/repositories"
	"tripforge/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideExportService,
	provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}

func provideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func provideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, exportService)
}
