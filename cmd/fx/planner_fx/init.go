package planner_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
	"voyago/pkg/memcache"
)

var Module = fx.Provide(
	memcache.NewTravelTimeCache,
	services.NewPlannerService,
	controllers.NewPlanController)
