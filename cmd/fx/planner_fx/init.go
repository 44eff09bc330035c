package planner_fx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
	"tripforge/internal/catalog"
	"tripforge/internal/services"
	"tripforge/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService,
	provideInterpreterService,
	providePlannerController)

func providePlannerService(cat *catalog.Catalog, planClient utils.PlanClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(cat, planClient, nil)
}

func provideInterpreterService() services.InterpreterServiceInterface {
	return services.NewInterpreterService()
}

func providePlannerController(
	plannerService services.PlannerServiceInterface,
	interpreterService services.InterpreterServiceInterface,
	cat *catalog.Catalog,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, interpreterService, cat)
}
