package admin_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
	"voyago/internal/services"
)

var Module = fx.Provide(
	services.NewAdminService,
	controllers.NewAdminController)
